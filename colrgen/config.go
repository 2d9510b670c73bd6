// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colrgen

import (
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/milot-mirdita/InconsolataProtein/fontcss"
	"github.com/milot-mirdita/InconsolataProtein/ttx"
	"github.com/mitchellh/go-homedir"
)

// Config contains the configuration information
// used by colrgen
type Config struct {

	// the color scheme file to read (.json, .yaml, or .yml)
	Input string `default:"cleancolors.json" posarg:"0" required:"-"`

	// the directory the TTX fragments are written to
	Output string `default:"ttx"`

	// the file name extension of the TTX fragments
	Ext string `default:".ttx"`

	// if specified, the text appended to each glyph name to name its color layer glyph
	LayerSuffix string

	// the scheme used as the first palette of the combined palettes
	Base string `default:"clustal2"`

	// the color of glyphs a scheme does not define in the combined palettes
	Fallback string `default:"#000000FF"`

	// the font family name
	Family string `default:"Protsolata"`

	// the text shown by the demo page and the terminal preview
	Sample string `default:"ARNDCQEGHILKMFPSTWYVBZX arncdqeghilkmfpstwyvbzx 0123456789 -.|"`

	// the stylesheet file to write (defaults to <family>_palettes.css)
	CSS string

	// the demo page file to write (defaults to <family>_test.html)
	HTML string
}

// Writer returns the fragment writer for the configured output.
func (c *Config) Writer() *ttx.Writer {
	w := ttx.NewWriter(expand(c.Output), c.Ext)
	w.LayerSuffix = c.LayerSuffix
	return w
}

// CSSFile returns the stylesheet file name.
func (c *Config) CSSFile() string {
	if c.CSS != "" {
		return c.CSS
	}
	return c.Family + "_palettes.css"
}

// HTMLFile returns the demo page file name.
func (c *Config) HTMLFile() string {
	if c.HTML != "" {
		return c.HTML
	}
	return c.Family + "_test.html"
}

// FontOptions returns the stylesheet and demo page options.
// The demo page links the stylesheet relative to its own directory.
func (c *Config) FontOptions() *fontcss.Options {
	href := stylesheetHref(expand(c.CSSFile()), expand(c.HTMLFile()))
	return &fontcss.Options{Family: c.Family, Stylesheet: href, Sample: c.Sample}
}

// stylesheetHref returns the link to the stylesheet file cfn from the
// page file hfn, or cfn as given if there is no relative path.
func stylesheetHref(cfn, hfn string) string {
	rel, err := filepath.Rel(filepath.Dir(hfn), cfn)
	if err != nil {
		return filepath.ToSlash(cfn)
	}
	return filepath.ToSlash(rel)
}

// expand expands a leading ~ in the given path, keeping the
// path as is if the home directory cannot be found.
func expand(path string) string {
	exp, err := homedir.Expand(path)
	if errors.Log(err) != nil {
		return path
	}
	return exp
}
