// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontcss

import (
	"html/template"
	"io"

	"github.com/milot-mirdita/InconsolataProtein/palette"
)

var demoTmpl = template.Must(template.New("demo").Parse(`<!doctype html><meta charset=utf-8>
<title>{{.Family}} demo</title>
<link rel="stylesheet" href="{{.Stylesheet}}">
<style>body { font: 32px/1.4 '{{.Family}}', monospace; margin: 2rem }</style>
{{with .Base}}<h2>Base palette ({{.}})</h2>
<p class="{{.}}">{{$.Sample}}</p>
{{end}}<h2>Each scheme built-in + override</h2>
{{range .Names}}<p class="{{.}}">{{.}}: {{$.Sample}}</p>
<p class="{{.}}-override">{{.}}-override: {{$.Sample}}</p>
{{end}}`))

type demoData struct {
	*Options
	Base  string
	Names []string
}

// DemoPage writes an HTML page showing the sample text in the first
// palette of the set, and then in every palette and its override.
func DemoPage(w io.Writer, st *palette.Set, opts *Options) error {
	data := &demoData{Options: opts, Names: st.Names}
	if len(st.Names) > 0 {
		data.Base = st.Names[0]
	}
	return demoTmpl.Execute(w, data)
}
