// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheme provides named color schemes, which map glyph names
// to color values, and reads collections of them from JSON and YAML
// files while keeping the order in which the keys appear in the file.
// Color values are opaque strings and are never parsed or validated.
package scheme

import (
	"slices"

	"cogentcore.org/core/base/ordmap"
)

// Scheme is a named, ordered mapping from glyph name to color value.
type Scheme struct {

	// Name is the scheme name, used as the stem of its output files.
	Name string

	// Colors maps glyph names to color values, in source order.
	Colors ordmap.Map[string, string]
}

// New returns a new [Scheme] with the given name and glyph / color
// pairs, given as alternating glyph and color strings. A trailing
// glyph without a color is ignored.
func New(name string, pairs ...string) *Scheme {
	sc := &Scheme{Name: name}
	sc.Colors.Init()
	for i := 0; i+1 < len(pairs); i += 2 {
		sc.Set(pairs[i], pairs[i+1])
	}
	return sc
}

// Set sets the color of the given glyph. A glyph that is already
// present keeps its position and takes the new color.
func (sc *Scheme) Set(glyph, color string) {
	sc.Colors.Add(glyph, color)
}

// Color returns the color of the given glyph, and whether it is present.
func (sc *Scheme) Color(glyph string) (string, bool) {
	return sc.Colors.ValueByKeyTry(glyph)
}

// Len returns the number of glyphs in the scheme.
func (sc *Scheme) Len() int {
	return sc.Colors.Len()
}

// Glyphs returns the glyph names in scheme order.
func (sc *Scheme) Glyphs() []string {
	return sc.Colors.Keys()
}

// Schemes is an ordered collection of [Scheme]s keyed by name.
type Schemes struct {
	ordmap.Map[string, *Scheme]
}

// Add adds the given scheme, replacing any scheme with the same name
// in place.
func (ss *Schemes) Add(sc *Scheme) {
	ss.Map.Add(sc.Name, sc)
}

// Scheme returns the scheme with the given name, or nil.
func (ss *Schemes) Scheme(name string) *Scheme {
	return ss.ValueByKey(name)
}

// Names returns the scheme names in source order.
func (ss *Schemes) Names() []string {
	return ss.Keys()
}

// Ordered returns the scheme names with base first, if it is present,
// followed by the remaining names in sorted order.
func (ss *Schemes) Ordered(base string) []string {
	var rest []string
	for _, kv := range ss.Order {
		if kv.Key != base {
			rest = append(rest, kv.Key)
		}
	}
	slices.Sort(rest)
	if _, has := ss.IndexByKeyTry(base); has {
		return append([]string{base}, rest...)
	}
	return rest
}
