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
	"math"
	"testing"
)

func TestArea(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  float64
	}{
		{"rectangle", Rectangle{Width: 10, Height: 70}, 700},
		{"rectangleZero", Rectangle{Width: 0, Height: 70}, 0},
		{"rectangleWide", Rectangle{Width: 1 << 20, Height: 3}, 3 << 20},
		{"square", Square{Side: 10}, 100},
		{"squareOne", Square{Side: 1}, 1},
		{"rectanglePastUint64", Rectangle{Width: 1 << 32, Height: 1 << 32}, 0x1p64},
		{"rectangleMax", Rectangle{Width: math.MaxUint64, Height: 2}, 0x1p65},
		{"squarePastUint64", Square{Side: 1 << 32}, 0x1p64},
		{"squareLarge", Square{Side: 3 << 40}, 9 * 0x1p80},
		{"circleZero", Circle{Radius: 0}, 0},
		{"circleUnit", Circle{Radius: 1}, 3.14},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got, want := Area(test.shape), test.want; got != want {
				t.Errorf("Area(%+v) = %v, want %v", test.shape, got, want)
			}
		})
	}
}

func TestArea_circle(t *testing.T) {
	// 3.14 * 4.5 * 4.5
	const want = 63.585
	got := Area(Circle{Radius: 4.5})
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Area(Circle{4.5}) = %v, want %v", got, want)
	}
	if math.Abs(got-63.606) < 1e-3 {
		t.Errorf("Area(Circle{4.5}) = %v, matches a 3.141 approximation of pi", got)
	}
}

func TestArea_exactIntegers(t *testing.T) {
	// Sides are converted before multiplying, so the expected value never
	// shares the uint64 arithmetic under test. Every product below is under
	// 2^53 and exact in a float64.
	sides := []uint64{0, 1, 2, 3, 7, 10, 49, 70, 1 << 20, 1<<26 - 1, 1 << 26}
	for _, w := range sides {
		for _, h := range sides {
			if got, want := Area(Rectangle{Width: w, Height: h}), float64(w)*float64(h); got != want {
				t.Fatalf("Area(Rectangle{%v, %v}) = %v, want %v", w, h, got, want)
			}
		}
		if got, want := Area(Square{Side: w}), float64(w)*float64(w); got != want {
			t.Fatalf("Area(Square{%v}) = %v, want %v", w, got, want)
		}
	}
}

// TestArea_everyKind guards the closed variant set: adding a Kind without a
// representative here, or without a case in Area, fails.
func TestArea_everyKind(t *testing.T) {
	representatives := map[Kind]Shape{
		KindRectangle: Rectangle{Width: 2, Height: 3},
		KindSquare:    Square{Side: 2},
		KindCircle:    Circle{Radius: 2},
	}
	for _, k := range Kinds() {
		s, ok := representatives[k]
		if !ok {
			t.Errorf("no representative shape for kind %v", k)
			continue
		}
		if got := s.Kind(); got != k {
			t.Errorf("%T.Kind() = %v, want %v", s, got, k)
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Area(%v) panicked: %v", k, r)
				}
			}()
			if a := Area(s); a <= 0 || math.IsNaN(a) {
				t.Errorf("Area(%v) = %v, want a positive area", k, a)
			}
		}()
	}
	if got, want := len(representatives), len(Kinds()); got != want {
		t.Errorf("representatives cover %v kinds, but there are %v", got, want)
	}
}

func TestArea_nilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Area(nil) didn't panic")
		}
	}()
	Area(nil)
}

func TestKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	for _, name := range []string{"", "invalid", "triangle", "Circle"} {
		if k, err := ParseKind(name); err == nil {
			t.Errorf("ParseKind(%q) = %v, want error", name, k)
		}
	}
	if got, want := Kind(42).String(), "Kind(42)"; got != want {
		t.Errorf("Kind(42).String() = %q, want %q", got, want)
	}
}
