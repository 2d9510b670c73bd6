// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ttx renders palettes as TTX fragments holding a COLR table of
// glyph color layers and a CPAL table of palette colors, ready to be
// merged into a font with the fontTools ttx compiler.
package ttx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/milot-mirdita/InconsolataProtein/palette"
)

// Writer renders fragments and writes them to files.
type Writer struct {

	// Dir is the directory fragment files are written to.
	Dir string

	// Ext is the file name extension of fragment files, including the dot.
	Ext string

	// LayerSuffix is appended to each glyph name to name its color layer.
	LayerSuffix string
}

// NewWriter returns a new [Writer] for the given directory and extension.
func NewWriter(dir, ext string) *Writer {
	return &Writer{Dir: dir, Ext: ext}
}

// Fragment returns the fragment of the given palette: one COLR layer
// record per assignment in order, and one CPAL palette of its colors
// in index order.
func (w *Writer) Fragment(p *palette.Palette) []byte {
	return execTmpl(fragmentTmpl, &fragmentData{
		Assignments: p.Assignments,
		Palettes:    [][]string{p.Colors()},
		NumEntries:  p.Len(),
		LayerSuffix: w.LayerSuffix,
	})
}

// SetFragment returns the fragment of the given multi-palette set,
// with one CPAL palette per scheme.
func (w *Writer) SetFragment(st *palette.Set) []byte {
	return execTmpl(fragmentTmpl, &fragmentData{
		Assignments: st.Assignments,
		Palettes:    st.Rows,
		NumEntries:  st.Len(),
		LayerSuffix: w.LayerSuffix,
	})
}

// Filename returns the path of the fragment file for the given name.
func (w *Writer) Filename(name string) string {
	return filepath.Join(w.Dir, name+w.Ext)
}

// WritePalette writes the fragment of the given palette to the file
// named after its scheme, returning the file path.
func (w *Writer) WritePalette(p *palette.Palette) (string, error) {
	return w.WriteFile(p.Name, w.Fragment(p))
}

// WriteSet writes the fragment of the given set to the file with
// the given name, returning the file path.
func (w *Writer) WriteSet(name string, st *palette.Set) (string, error) {
	return w.WriteFile(name, w.SetFragment(st))
}

// WriteFile writes the given fragment to the file for the given name,
// making [Writer.Dir] if it does not exist.
func (w *Writer) WriteFile(name string, frag []byte) (string, error) {
	fn := w.Filename(name)
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fn, fmt.Errorf("ttx: making output directory: %w", err)
	}
	if err := os.WriteFile(fn, frag, 0o644); err != nil {
		return fn, fmt.Errorf("ttx: writing fragment: %w", err)
	}
	return fn, nil
}
