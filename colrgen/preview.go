// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colrgen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/milot-mirdita/InconsolataProtein/palette"
	"github.com/milot-mirdita/InconsolataProtein/scheme"
	"github.com/muesli/termenv"
)

// Preview prints the sample text once per scheme, with every glyph
// colored by its palette color as far as the terminal supports it.
func Preview(c *Config) error {
	ss, err := scheme.Open(c.Input)
	if err != nil {
		return err
	}
	return writePreview(os.Stdout, termenv.NewOutput(os.Stdout), ss, c.Sample)
}

func writePreview(w io.Writer, out *termenv.Output, ss *scheme.Schemes, sample string) error {
	for _, kv := range ss.Order {
		p := palette.Build(kv.Value)
		var sb strings.Builder
		for _, r := range sample {
			sb.WriteString(colorGlyph(out, p, string(r)))
		}
		if _, err := fmt.Fprintf(w, "%s (%d colors): %s\n", kv.Key, p.Len(), sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// colorGlyph returns the glyph styled with its palette color,
// or unstyled if it has none.
func colorGlyph(out *termenv.Output, p *palette.Palette, glyph string) string {
	idx, ok := p.GlyphIndex(glyph)
	if !ok {
		return glyph
	}
	clr := out.Color(palette.RGB(p.Color(idx)))
	if clr == nil {
		return glyph
	}
	return out.String(glyph).Foreground(clr).String()
}
