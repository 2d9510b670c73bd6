// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colrgen generates COLR/CPAL TTX fragments, palette stylesheets,
// and demo pages for a color font from a file of color schemes.
package main

import (
	"cogentcore.org/core/cli"
	"github.com/milot-mirdita/InconsolataProtein/colrgen"
)

func main() {
	opts := cli.DefaultOptions("colrgen", "Colrgen generates COLR/CPAL TTX fragments, palette stylesheets, and demo pages for a color font from a file of color schemes.")
	opts.DefaultFiles = []string{"colrgen.toml"}
	opts.SearchUp = true
	cli.Run(opts, &colrgen.Config{},
		&cli.Cmd[*colrgen.Config]{Func: colrgen.Generate, Name: "generate", Doc: "generate writes one TTX fragment per scheme", Root: true},
		&cli.Cmd[*colrgen.Config]{Func: colrgen.Palettes, Name: "palettes", Doc: "palettes writes one TTX fragment with a palette per scheme"},
		&cli.Cmd[*colrgen.Config]{Func: colrgen.CSS, Name: "css", Doc: "css writes the palette stylesheet and demo page"},
		&cli.Cmd[*colrgen.Config]{Func: colrgen.Preview, Name: "preview", Doc: "preview prints the sample text in every scheme"},
		&cli.Cmd[*colrgen.Config]{Func: colrgen.Watch, Name: "watch", Doc: "watch regenerates the TTX fragments whenever the scheme file changes"},
	)
}
