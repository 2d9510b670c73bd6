// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fontcss writes the CSS stylesheet that exposes the palettes
// of a color font through @font-palette-values rules, and an HTML page
// demonstrating every palette.
package fontcss

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/milot-mirdita/InconsolataProtein/palette"
)

// Options are the font and file names used by the stylesheet and demo page.
type Options struct {

	// Family is the font family name.
	Family string

	// Stylesheet is the stylesheet file referenced by the demo page.
	Stylesheet string

	// Sample is the text shown in every palette on the demo page.
	Sample string
}

// Stylesheet returns the stylesheet for the given set: a @font-face rule
// for the woff and woff2 fonts of the family, and for each palette a
// @font-palette-values rule selecting it, an override rule that recolors
// palette 0 with its colors, and a class rule for each of those.
func Stylesheet(st *palette.Set, opts *Options) string {
	family := quote(opts.Family)
	sheet := css.NewStylesheet()
	sheet.Rules = append(sheet.Rules, atRule("@font-face", "",
		decl("font-family", family),
		decl("src", fmt.Sprintf("url('./%[1]s.woff') format('woff'), url('./%[1]s.woff2') format('woff2')", opts.Family))))

	for k, name := range st.Names {
		overrides := make([]string, len(st.Glyphs))
		for i, c := range st.Rows[k] {
			overrides[i] = strconv.Itoa(i) + " " + palette.RGB(c)
		}
		sheet.Rules = append(sheet.Rules,
			atRule("@font-palette-values", "--"+name,
				decl("font-family", family),
				decl("base-palette", strconv.Itoa(k))),
			atRule("@font-palette-values", "--"+name+"-override",
				decl("font-family", family),
				decl("base-palette", "0"),
				decl("override-colors", strings.Join(overrides, ", "))),
			classRule(name, family, "--"+name),
			classRule(name+"-override", family, "--"+name+"-override"))
	}
	return "/* " + opts.Family + " palettes */\n" + sheet.String() + "\n"
}

func quote(s string) string {
	return "'" + s + "'"
}

func decl(property, value string) *css.Declaration {
	d := css.NewDeclaration()
	d.Property = property
	d.Value = value
	return d
}

func atRule(name, prelude string, decls ...*css.Declaration) *css.Rule {
	r := css.NewRule(css.AtRule)
	r.Name = name
	r.Prelude = prelude
	r.Declarations = decls
	return r
}

func classRule(class, family, paletteName string) *css.Rule {
	r := css.NewRule(css.QualifiedRule)
	r.Selectors = []string{"." + class}
	r.Declarations = []*css.Declaration{
		decl("font-family", family),
		decl("font-palette", paletteName),
	}
	return r
}
