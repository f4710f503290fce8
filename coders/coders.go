// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package coders converts shape documents to and from their serialized forms.
//
// A document lists shapes by kind, with the fields that kind needs:
//
//	shapes:
//	  - {name: plot, kind: rectangle, width: 10, height: 70}
//	  - {kind: square, side: 10}
//	  - {kind: circle, radius: 4.5}
//
// YAML and JSON are both accepted, and both reject unknown fields.
package coders

import (
	"bytes"
	"math"
	"path"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"lostluck.dev/shape-go"
)

// ErrInvalid is matched by errors.Is for documents that decode, but
// describe a shape that can't exist.
var ErrInvalid = errors.New("coders: invalid shape")

// Format is a serialization format for shape documents.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errors.Errorf("coders: unknown format %q", name)
}

// FormatFor picks the format from a path or URL's extension.
func FormatFor(location string) (Format, error) {
	location, _, _ = strings.Cut(location, "?")
	ext := strings.TrimPrefix(path.Ext(location), ".")
	if ext == "" {
		return "", errors.Errorf("coders: %s has no extension to pick a format from", location)
	}
	return ParseFormat(ext)
}

// Entry is a single shape as written in a document. Only the fields for
// the entry's Kind may be set.
type Entry struct {
	Name   string   `yaml:"name,omitempty" json:"name,omitempty"`
	Kind   string   `yaml:"kind" json:"kind"`
	Width  *uint64  `yaml:"width,omitempty" json:"width,omitempty"`
	Height *uint64  `yaml:"height,omitempty" json:"height,omitempty"`
	Side   *uint64  `yaml:"side,omitempty" json:"side,omitempty"`
	Radius *float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
}

type document struct {
	Shapes []Entry `yaml:"shapes" json:"shapes"`
}

// Decode parses a shape document.
func Decode(f Format, data []byte) ([]Entry, error) {
	var doc document
	switch f {
	case FormatYAML:
		if err := yaml.UnmarshalStrict(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc, json.RejectUnknownMembers(true)); err != nil {
			return nil, errors.Wrap(err, "decode json")
		}
	default:
		return nil, errors.Errorf("coders: unknown format %q", f)
	}
	return doc.Shapes, nil
}

// Shape validates the entry and builds the shape it describes.
func (e Entry) Shape() (shape.Shape, error) {
	k, err := shape.ParseKind(e.Kind)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%v", err)
	}
	set := map[string]bool{
		"width":  e.Width != nil,
		"height": e.Height != nil,
		"side":   e.Side != nil,
		"radius": e.Radius != nil,
	}
	var want []string
	switch k {
	case shape.KindRectangle:
		want = []string{"width", "height"}
	case shape.KindSquare:
		want = []string{"side"}
	case shape.KindCircle:
		want = []string{"radius"}
	}
	for _, f := range want {
		if !set[f] {
			return nil, errors.Wrapf(ErrInvalid, "%s %q is missing %s", k, e.Name, f)
		}
		delete(set, f)
	}
	for f, ok := range set {
		if ok {
			return nil, errors.Wrapf(ErrInvalid, "%s %q can't have %s", k, e.Name, f)
		}
	}

	switch k {
	case shape.KindRectangle:
		return shape.Rectangle{Width: *e.Width, Height: *e.Height}, nil
	case shape.KindSquare:
		return shape.Square{Side: *e.Side}, nil
	case shape.KindCircle:
		r := *e.Radius
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, errors.Wrapf(ErrInvalid, "circle %q has radius %v", e.Name, r)
		}
		c := shape.Circle{Radius: r}
		if math.IsInf(shape.Area(c), 0) {
			return nil, errors.Wrapf(ErrInvalid, "circle %q has radius %v, too large for a finite area", e.Name, r)
		}
		return c, nil
	}
	panic("unreachable: ParseKind returned undeclared kind " + k.String())
}

// FromShape is the inverse of Entry.Shape.
func FromShape(name string, s shape.Shape) Entry {
	e := Entry{Name: name, Kind: s.Kind().String()}
	switch s := s.(type) {
	case shape.Rectangle:
		e.Width, e.Height = &s.Width, &s.Height
	case shape.Square:
		e.Side = &s.Side
	case shape.Circle:
		e.Radius = &s.Radius
	}
	return e
}

// EncodeShapes writes entries as a shape document.
func EncodeShapes(f Format, entries []Entry) ([]byte, error) {
	return encode(f, document{Shapes: entries})
}

type measurement struct {
	Name string  `yaml:"name" json:"name"`
	Kind string  `yaml:"kind" json:"kind"`
	Area float64 `yaml:"area" json:"area"`
}

type measurements struct {
	Measurements []measurement `yaml:"measurements" json:"measurements"`
}

// Encode writes measurements as a document. Areas must be finite; entries
// accepted by Entry.Shape always measure to one.
func Encode(f Format, ms []shape.Measurement) ([]byte, error) {
	doc := measurements{Measurements: make([]measurement, 0, len(ms))}
	for _, m := range ms {
		if math.IsInf(m.Area, 0) || math.IsNaN(m.Area) {
			return nil, errors.Wrapf(ErrInvalid, "%s %q has area %v", m.Kind, m.Name, m.Area)
		}
		doc.Measurements = append(doc.Measurements, measurement{Name: m.Name, Kind: m.Kind.String(), Area: m.Area})
	}
	return encode(f, doc)
}

func encode(f Format, v any) ([]byte, error) {
	switch f {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		return data, errors.Wrap(err, "encode yaml")
	case FormatJSON:
		data, err := json.Marshal(v, jsontext.WithIndent("  "))
		if err != nil {
			return nil, errors.Wrap(err, "encode json")
		}
		return append(bytes.TrimRight(data, "\n"), '\n'), nil
	}
	return nil, errors.Errorf("coders: unknown format %q", f)
}
