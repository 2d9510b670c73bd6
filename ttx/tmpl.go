// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ttx

import (
	"bytes"
	"text/template"

	"cogentcore.org/core/base/errors"
	"github.com/milot-mirdita/InconsolataProtein/palette"
)

// fragmentData is the data of all of the fragment templates.
type fragmentData struct {
	Assignments []palette.Assignment
	Palettes    [][]string
	NumEntries  int
	LayerSuffix string
}

// The COLR block is followed directly by the CPAL block on the same line,
// and values are written literally without XML escaping.
var fragmentTmpl = template.Must(template.New("fragment").Parse(
	`<COLR>
<version value="0"/>
{{range .Assignments}}<ColorGlyph name="{{.Glyph}}"><layer colorID="{{.Index}}" name="{{.Glyph}}{{$.LayerSuffix}}"/></ColorGlyph>
{{end}}</COLR><CPAL>
<version value="0"/>
<numPaletteEntries value="{{.NumEntries}}"/>
{{range $k, $colors := .Palettes}}<palette index="{{$k}}">
{{range $i, $c := $colors}}<color index="{{$i}}" value="{{$c}}"/>
{{end}}</palette>
{{end}}</CPAL>
</ttFont>
`))

// execTmpl executes the given template with the given data.
// It panics on any error, which can only be a programmer error.
func execTmpl(t *template.Template, data *fragmentData) []byte {
	var buf bytes.Buffer
	errors.Must(t.Execute(&buf, data))
	return buf.Bytes()
}
