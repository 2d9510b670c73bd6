// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette builds deduplicated color palettes from color schemes,
// assigning each distinct color value a stable index in the order in which
// it is first encountered, along with the palette index of every glyph.
package palette

import (
	"cogentcore.org/core/base/ordmap"
	"github.com/milot-mirdita/InconsolataProtein/scheme"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Assignment is the palette index of one glyph name.
type Assignment struct {
	Glyph string
	Index int
}

// Palette is the deduplicated palette of one scheme, with the
// assignment of every glyph of the scheme to a palette index.
type Palette struct {

	// Name is the name of the scheme the palette was built from.
	Name string

	// Assignments has two entries per glyph, in scheme order:
	// the upper case glyph name followed by the lower case one.
	Assignments []Assignment

	// colors maps each distinct color value to its index,
	// which is also its position in the map order.
	colors ordmap.Map[string, int]
}

// Build returns the palette of the given scheme. Color values are
// indexed in first-encounter order, starting at 0. Both case variants
// of every glyph name are assigned, even when that duplicates an
// assignment of another glyph differing only by case.
func Build(sc *scheme.Scheme) *Palette {
	p := &Palette{Name: sc.Name}
	p.colors.Init()
	cs := newCasers()
	for _, kv := range sc.Colors.Order {
		idx := p.add(kv.Value)
		p.Assignments = cs.assign(p.Assignments, kv.Key, idx)
	}
	return p
}

// add returns the index of the given color, adding it if it is new.
func (p *Palette) add(color string) int {
	if idx, has := p.colors.IndexByKeyTry(color); has {
		return idx
	}
	idx := p.colors.Len()
	p.colors.Add(color, idx)
	return idx
}

// Len returns the number of distinct colors in the palette.
func (p *Palette) Len() int {
	return p.colors.Len()
}

// Colors returns the color values in index order.
func (p *Palette) Colors() []string {
	return p.colors.Keys()
}

// Color returns the color value at the given index.
func (p *Palette) Color(idx int) string {
	return p.colors.KeyByIndex(idx)
}

// Index returns the index of the given color value, and whether
// it is in the palette.
func (p *Palette) Index(color string) (int, bool) {
	return p.colors.IndexByKeyTry(color)
}

// GlyphIndex returns the index assigned to the given glyph name by its
// first assignment, and whether there is one.
func (p *Palette) GlyphIndex(glyph string) (int, bool) {
	for _, a := range p.Assignments {
		if a.Glyph == glyph {
			return a.Index, true
		}
	}
	return -1, false
}

// casers does full Unicode case mapping, so that for example
// "ß" upper cases to "SS".
type casers struct {
	upper, lower cases.Caser
}

func newCasers() *casers {
	return &casers{upper: cases.Upper(language.Und), lower: cases.Lower(language.Und)}
}

// assign appends the upper and lower case assignments of glyph.
func (cs *casers) assign(as []Assignment, glyph string, idx int) []Assignment {
	return append(as,
		Assignment{Glyph: cs.upper.String(glyph), Index: idx},
		Assignment{Glyph: cs.lower.String(glyph), Index: idx})
}

// RGB returns the #RRGGBB prefix of a #RRGGBBAA color value,
// and any other value unchanged.
func RGB(color string) string {
	if len(color) == 9 && color[0] == '#' {
		return color[:7]
	}
	return color
}
