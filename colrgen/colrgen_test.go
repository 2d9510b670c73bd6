// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colrgen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milot-mirdita/InconsolataProtein/scheme"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchemes = `{
	"zappo": {"A": "#FF0000FF", "b": "#00FF00FF", "C": "#FF0000FF"},
	"clustal2": {"A": "#0000FFFF", "b": "#0000FFFF"}
}`

func testConfig(t *testing.T) *Config {
	dir := t.TempDir()
	input := filepath.Join(dir, "colors.json")
	require.NoError(t, os.WriteFile(input, []byte(testSchemes), 0o644))
	return &Config{
		Input:    input,
		Output:   filepath.Join(dir, "ttx"),
		Ext:      ".ttx",
		Base:     "clustal2",
		Fallback: "#000000FF",
		Family:   "Protsolata",
		Sample:   "Ab c",
		CSS:      filepath.Join(dir, "web", "palettes.css"),
		HTML:     filepath.Join(dir, "web", "demo.html"),
	}
}

func readFile(t *testing.T, fn string) string {
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	return string(b)
}

func TestGenerate(t *testing.T) {
	c := testConfig(t)
	require.NoError(t, Generate(c))

	zappo := readFile(t, filepath.Join(c.Output, "zappo.ttx"))
	assert.Contains(t, zappo, `<ColorGlyph name="C"><layer colorID="0" name="C"/></ColorGlyph>`)
	assert.Contains(t, zappo, `<numPaletteEntries value="2"/>`)
	assert.Contains(t, zappo, `<color index="1" value="#00FF00FF"/>`)

	cl := readFile(t, filepath.Join(c.Output, "clustal2.ttx"))
	assert.Contains(t, cl, `<ColorGlyph name="B"><layer colorID="0" name="B"/></ColorGlyph>`)
	assert.Contains(t, cl, `<numPaletteEntries value="1"/>`)
	assert.NotContains(t, cl, "#FF0000FF")

	// regenerating gives the same bytes
	require.NoError(t, Generate(c))
	assert.Equal(t, zappo, readFile(t, filepath.Join(c.Output, "zappo.ttx")))
}

func TestGenerateLayerSuffix(t *testing.T) {
	c := testConfig(t)
	c.LayerSuffix = ".layer"
	require.NoError(t, Generate(c))
	assert.Contains(t, readFile(t, filepath.Join(c.Output, "zappo.ttx")), `name="a.layer"`)
}

func TestGenerateMissingInput(t *testing.T) {
	c := testConfig(t)
	c.Input = filepath.Join(t.TempDir(), "missing.json")
	assert.Error(t, Generate(c))
}

func TestPalettes(t *testing.T) {
	c := testConfig(t)
	require.NoError(t, Palettes(c))
	frag := readFile(t, filepath.Join(c.Output, "Protsolata.ttx"))
	assert.Contains(t, frag, `<numPaletteEntries value="3"/>`)
	assert.Contains(t, frag, `<palette index="1">`)
	// clustal2 is the base palette and has no C
	assert.True(t, strings.Index(frag, `value="#0000FFFF"`) < strings.Index(frag, `<palette index="1">`))
	assert.Contains(t, frag, `<color index="2" value="#000000FF"/>`)
}

func TestCSS(t *testing.T) {
	c := testConfig(t)
	require.NoError(t, CSS(c))
	sheet := readFile(t, c.CSS)
	assert.Contains(t, sheet, "--clustal2-override")
	assert.Contains(t, sheet, ".zappo")
	page := readFile(t, c.HTML)
	assert.Contains(t, page, `href="palettes.css"`)
	assert.Contains(t, page, "zappo-override: Ab c")
}

func TestCSSRelativePaths(t *testing.T) {
	tests := []struct {
		css, html, href string
	}{
		{"web/palettes.css", "web/demo.html", "palettes.css"},
		{"css/palettes.css", "pages/demo.html", "../css/palettes.css"},
		{"palettes.css", "web/demo.html", "../palettes.css"},
		{"web/palettes.css", "demo.html", "web/palettes.css"},
	}
	for _, tt := range tests {
		c := testConfig(t)
		t.Chdir(t.TempDir())
		c.CSS, c.HTML = tt.css, tt.html
		require.NoError(t, CSS(c))
		page := readFile(t, c.HTML)
		assert.Contains(t, page, `href="`+tt.href+`"`)
		// the link resolves to the stylesheet from the page directory
		_, err := os.Stat(filepath.Join(filepath.Dir(c.HTML), filepath.FromSlash(tt.href)))
		assert.NoError(t, err)
	}
}

func TestPalettesFamilyNameWarning(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	c := testConfig(t)
	require.NoError(t, Palettes(c))
	assert.NotContains(t, logs.String(), "level=WARN")

	c.Family = "zappo"
	require.NoError(t, Palettes(c))
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "name=zappo")
}

func TestConfigFiles(t *testing.T) {
	c := &Config{Family: "Mono"}
	assert.Equal(t, "Mono_palettes.css", c.CSSFile())
	assert.Equal(t, "Mono_test.html", c.HTMLFile())
	c.CSS = "x.css"
	assert.Equal(t, "x.css", c.FontOptions().Stylesheet)
	c.HTML = "web/demo.html"
	assert.Equal(t, "../x.css", c.FontOptions().Stylesheet)
	assert.Equal(t, "../css/a.css", stylesheetHref("css/a.css", "web/p.html"))
}

func TestPreview(t *testing.T) {
	ss := &scheme.Schemes{}
	ss.Add(scheme.New("zappo", "A", "#FF0000FF", "b", "#00FF00FF"))
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, writePreview(&buf, out, ss, "Ab c"))
	assert.Equal(t, "zappo (2 colors): Ab c\n", buf.String())
}

func TestPreviewColors(t *testing.T) {
	ss := &scheme.Schemes{}
	ss.Add(scheme.New("zappo", "A", "#FF0000FF"))
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.TrueColor))
	require.NoError(t, writePreview(&buf, out, ss, "Ax"))
	s := buf.String()
	assert.Contains(t, s, "\x1b[")
	assert.True(t, strings.HasSuffix(s, "x\n"))
}

func TestWatchFile(t *testing.T) {
	c := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, c.Input, func() error {
			runs <- struct{}{}
			return nil
		})
	}()

	// keep writing until the watcher has seen a write
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	deadline := time.After(10 * time.Second)
	other := filepath.Join(filepath.Dir(c.Input), "other.json")
loop:
	for {
		select {
		case <-runs:
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(other, []byte("{}"), 0o644))
			require.NoError(t, os.WriteFile(c.Input, []byte(testSchemes), 0o644))
		case <-deadline:
			t.Fatal("watcher did not see the scheme file change")
		}
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
