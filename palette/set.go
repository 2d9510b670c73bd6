// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"slices"

	"github.com/milot-mirdita/InconsolataProtein/scheme"
)

// Set is a multi-palette over one glyph list shared by a collection
// of schemes: glyph i has color index i in every palette, and palette
// k holds the colors of scheme Names[k].
type Set struct {

	// Glyphs are the upper case glyph names of all schemes, sorted.
	// The index of a glyph is its color index.
	Glyphs []string

	// Assignments has the upper and lower case assignment of each glyph.
	Assignments []Assignment

	// Names are the scheme names, in palette order.
	Names []string

	// Rows has one row of len(Glyphs) colors per palette.
	Rows [][]string
}

// BuildSet builds the multi-palette [Set] of the given schemes, with the
// base scheme as palette 0 (when present) and the rest sorted by name.
// Glyphs that a scheme does not define, under either their upper or
// lower case name, get the fallback color.
func BuildSet(ss *scheme.Schemes, base, fallback string) *Set {
	cs := newCasers()
	seen := map[string]bool{}
	st := &Set{}
	for _, skv := range ss.Order {
		for _, gkv := range skv.Value.Colors.Order {
			g := cs.upper.String(gkv.Key)
			if !seen[g] {
				seen[g] = true
				st.Glyphs = append(st.Glyphs, g)
			}
		}
	}
	slices.Sort(st.Glyphs)
	for i, g := range st.Glyphs {
		st.Assignments = cs.assign(st.Assignments, g, i)
	}
	st.Names = ss.Ordered(base)
	for _, nm := range st.Names {
		sc := ss.Scheme(nm)
		row := make([]string, len(st.Glyphs))
		for i, g := range st.Glyphs {
			c, ok := sc.Color(g)
			if !ok {
				c, ok = sc.Color(cs.lower.String(g))
			}
			if !ok {
				c = fallback
			}
			row[i] = c
		}
		st.Rows = append(st.Rows, row)
	}
	return st
}

// Len returns the number of palette entries, which is the number of glyphs.
func (st *Set) Len() int {
	return len(st.Glyphs)
}
