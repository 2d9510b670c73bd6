// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colrgen provides the commands of the colrgen tool, which turns
// a file of named color schemes into COLR/CPAL TTX fragments for a color
// font, along with a palette stylesheet and demo page for the font.
package colrgen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/logx"
	"github.com/milot-mirdita/InconsolataProtein/fontcss"
	"github.com/milot-mirdita/InconsolataProtein/palette"
	"github.com/milot-mirdita/InconsolataProtein/scheme"
)

// Generate writes one TTX fragment per scheme of the input file,
// named after the scheme, into the output directory.
func Generate(c *Config) error {
	ss, err := scheme.Open(c.Input)
	if err != nil {
		return err
	}
	w := c.Writer()
	for _, kv := range ss.Order {
		p := palette.Build(kv.Value)
		logx.PrintlnDebug("colrgen: scheme", kv.Key, "glyphs:", kv.Value.Len(), "colors:", p.Len())
		fn, err := w.WritePalette(p)
		if err != nil {
			return fmt.Errorf("scheme %q: %w", kv.Key, err)
		}
		slog.Info("wrote TTX fragment", "scheme", kv.Key, "file", fn)
	}
	return nil
}

// Palettes writes a single TTX fragment with one palette per scheme
// over the glyphs of all schemes, named after the font family.
func Palettes(c *Config) error {
	ss, err := scheme.Open(c.Input)
	if err != nil {
		return err
	}
	if ss.Scheme(c.Family) != nil {
		slog.Warn("a scheme has the name of the font family, so its fragment and the palettes fragment share a file", "name", c.Family, "file", c.Writer().Filename(c.Family))
	}
	st := palette.BuildSet(ss, c.Base, c.Fallback)
	fn, err := c.Writer().WriteSet(c.Family, st)
	if err != nil {
		return err
	}
	slog.Info("wrote TTX palettes", "palettes", len(st.Names), "entries", st.Len(), "file", fn)
	return nil
}

// CSS writes the palette stylesheet and the demo page of the font.
func CSS(c *Config) error {
	ss, err := scheme.Open(c.Input)
	if err != nil {
		return err
	}
	st := palette.BuildSet(ss, c.Base, c.Fallback)
	opts := c.FontOptions()

	cfn := expand(c.CSSFile())
	if err := writeFile(cfn, []byte(fontcss.Stylesheet(st, opts))); err != nil {
		return err
	}
	slog.Info("wrote stylesheet", "file", cfn)

	var buf bytes.Buffer
	if err := fontcss.DemoPage(&buf, st, opts); err != nil {
		return fmt.Errorf("colrgen: demo page: %w", err)
	}
	hfn := expand(c.HTMLFile())
	if err := writeFile(hfn, buf.Bytes()); err != nil {
		return err
	}
	slog.Info("wrote demo page", "file", hfn)
	return nil
}

func writeFile(fn string, b []byte) error {
	if dir := filepath.Dir(fn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("colrgen: %w", err)
		}
	}
	if err := os.WriteFile(fn, b, 0o644); err != nil {
		return fmt.Errorf("colrgen: %w", err)
	}
	return nil
}
