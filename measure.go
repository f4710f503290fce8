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

package shape

import (
	"fmt"

	"lostluck.dev/shape-go/internal/shapeopts"
)

// Measurement is the evaluated area of a single shape.
type Measurement struct {
	Name string
	Kind Kind
	Area float64
}

// Measure evaluates the area of s.
//
// The measurement is named by the Name option if present, and by the
// shape's kind otherwise.
func Measure(s Shape, opts ...Options) Measurement {
	var opt shapeopts.Struct
	opt.Join(opts...)

	m := Measurement{Name: opt.Name, Kind: s.Kind(), Area: Area(s)}
	if m.Name == "" {
		m.Name = m.Kind.String()
	}
	return m
}

// MeasureAll evaluates every shape, preserving order.
//
// If a Name option is set, each measurement is named with that name and its
// index, such as "plot[2]".
func MeasureAll(shapes []Shape, opts ...Options) []Measurement {
	var opt shapeopts.Struct
	opt.Join(opts...)

	return mapSlice(shapes, func(i int, s Shape) Measurement {
		if opt.Name == "" {
			return Measure(s)
		}
		return Measure(s, Name(fmt.Sprintf("%s[%d]", opt.Name, i)))
	})
}

func mapSlice[I, O any](in []I, fn func(int, I) O) []O {
	out := make([]O, 0, len(in))
	for i, v := range in {
		out = append(out, fn(i, v))
	}
	return out
}
