// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/yamlx"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Open reads the schemes from the given file, which must have a .json,
// .yaml, or .yml extension. A leading ~ is expanded to the home directory.
func Open(filename string) (*Schemes, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	ss := &Schemes{}
	switch ext := strings.ToLower(filepath.Ext(fn)); ext {
	case ".json":
		err = jsonx.Open(ss, fn)
	case ".yaml", ".yml":
		err = yamlx.Open(ss, fn)
	default:
		return nil, fmt.Errorf("scheme.Open: unsupported scheme file extension %q for %q", ext, fn)
	}
	if err != nil {
		return nil, fmt.Errorf("scheme.Open: %q: %w", fn, err)
	}
	return ss, nil
}

// ReadJSON reads JSON encoded schemes from the given reader.
func ReadJSON(r io.Reader) (*Schemes, error) {
	ss := &Schemes{}
	return ss, jsonx.Read(ss, r)
}

// ReadYAML reads YAML encoded schemes from the given reader.
func ReadYAML(r io.Reader) (*Schemes, error) {
	ss := &Schemes{}
	return ss, yamlx.Read(ss, r)
}

// UnmarshalJSON decodes an object of scheme objects, keeping the
// order of the keys.
func (ss *Schemes) UnmarshalJSON(b []byte) error {
	dec := newDecoder(b)
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		name, err := decodeKey(dec)
		if err != nil {
			return err
		}
		sc := New(name)
		if err := sc.decodeJSON(dec); err != nil {
			return fmt.Errorf("scheme %q: %w", name, err)
		}
		ss.Add(sc)
	}
	return expectDelim(dec, '}')
}

// UnmarshalJSON decodes an object of glyph name / color value pairs,
// keeping the order of the keys. The name is not changed.
func (sc *Scheme) UnmarshalJSON(b []byte) error {
	return sc.decodeJSON(newDecoder(b))
}

func (sc *Scheme) decodeJSON(dec *json.Decoder) error {
	sc.Colors.Init()
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		glyph, err := decodeKey(dec)
		if err != nil {
			return err
		}
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		// scalars are converted to text the way JavaScript does
		var color string
		switch v := tok.(type) {
		case string:
			color = v
		case json.Number:
			color = numberString(v)
		case bool:
			color = strconv.FormatBool(v)
		case nil:
			color = "null"
		default:
			return fmt.Errorf("glyph %q: expected a color value, got %v", glyph, tok)
		}
		sc.Set(glyph, color)
	}
	return expectDelim(dec, '}')
}

// numberString formats a JSON number as JavaScript converts numbers to
// strings: plain decimal notation between 1e-6 and 1e21, exponent
// notation without zero padding otherwise. Numbers out of float64 range
// keep their literal text.
func numberString(n json.Number) string {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return n.String()
	}
	if f == 0 {
		return "0"
	}
	if a := math.Abs(f); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

func newDecoder(b []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec
}

func expectDelim(dec *json.Decoder, d json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != d {
		return fmt.Errorf("expected %q, got %v", d, tok)
	}
	return nil
}

func decodeKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected an object key, got %v", tok)
	}
	return key, nil
}

// UnmarshalYAML decodes a mapping of scheme mappings, keeping the
// order of the keys.
func (ss *Schemes) UnmarshalYAML(node *yaml.Node) error {
	node, err := mappingNode(node)
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		sc := New(name)
		if err := sc.UnmarshalYAML(node.Content[i+1]); err != nil {
			return fmt.Errorf("scheme %q: %w", name, err)
		}
		ss.Add(sc)
	}
	return nil
}

// UnmarshalYAML decodes a mapping of glyph name / color value pairs,
// keeping the order of the keys. The name is not changed.
func (sc *Scheme) UnmarshalYAML(node *yaml.Node) error {
	node, err := mappingNode(node)
	if err != nil {
		return err
	}
	sc.Colors.Init()
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("glyph %q: line %d: expected a color value", k.Value, v.Line)
		}
		sc.Set(k.Value, v.Value)
	}
	return nil
}

func mappingNode(node *yaml.Node) (*yaml.Node, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	return node, nil
}
