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
	"math/bits"

	"github.com/pkg/errors"
)

// Pi is the approximation of π used for every Circle area.
const Pi = 3.14

// Kind identifies which variant a Shape is.
type Kind uint8

const (
	kindInvalid Kind = iota
	KindRectangle
	KindSquare
	KindCircle
)

var kindNames = [...]string{
	kindInvalid:   "invalid",
	KindRectangle: "rectangle",
	KindSquare:    "square",
	KindCircle:    "circle",
}

// Kinds returns every declared Kind, in declaration order.
func Kinds() []Kind {
	return []Kind{KindRectangle, KindSquare, KindCircle}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind with the given name, as produced by Kind.String.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return kindInvalid, errors.Errorf("shape: unknown kind %q", name)
}

// Shape is one of Rectangle, Square, or Circle.
//
// The set of shapes is closed. The unexported method keeps other packages
// from adding variants, so a type switch over the three is exhaustive.
type Shape interface {
	Kind() Kind

	isShape()
}

// Rectangle is an axis aligned rectangle with integer sides.
type Rectangle struct {
	Width, Height uint64
}

// Square is a rectangle with equal integer sides.
type Square struct {
	Side uint64
}

// Circle is a circle with a real valued radius.
type Circle struct {
	Radius float64
}

func (Rectangle) Kind() Kind { return KindRectangle }
func (Square) Kind() Kind    { return KindSquare }
func (Circle) Kind() Kind    { return KindCircle }

func (Rectangle) isShape() {}
func (Square) isShape()    {}
func (Circle) isShape()    {}

var (
	_ Shape = Rectangle{}
	_ Shape = Square{}
	_ Shape = Circle{}
)

// Area returns the area of s.
//
// Rectangles and squares are multiplied exactly in the integer domain before
// being converted, so sides whose product exceeds a uint64 don't wrap.
// Circles are Pi × radius².
func Area(s Shape) float64 {
	switch s := s.(type) {
	case Rectangle:
		return product(s.Width, s.Height)
	case Square:
		return product(s.Side, s.Side)
	case Circle:
		return Pi * s.Radius * s.Radius
	}
	// Only reachable with a nil Shape.
	panic(fmt.Sprintf("shape: Area called with unhandled shape %T", s))
}

// product converts the full 128 bit product of a and b.
func product(a, b uint64) float64 {
	hi, lo := bits.Mul64(a, b)
	return float64(hi)*0x1p64 + float64(lo)
}
