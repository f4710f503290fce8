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

// Package generic is the parametric counterpart of package shape.
//
// Each shape here keeps its numeric type T all the way through: a
// Rectangle[int32] has an int32 area. The price is that Circle has no
// factor of π, since π has no exact value in an arbitrary T. Circle.Area
// therefore returns the squared radius, and callers scale it themselves.
package generic

import "golang.org/x/exp/constraints"

// Multiplicand is the capability a shape's numeric type needs: it is closed
// under multiplication, and copying a value never transfers ownership.
type Multiplicand interface {
	constraints.Integer | constraints.Float
}

// Shape is any shape with an area of type T.
type Shape[T Multiplicand] interface {
	Area() T
}

// Rectangle has sides X and Y.
type Rectangle[T Multiplicand] struct {
	X, Y T
}

func (r Rectangle[T]) Area() T {
	return r.X * r.Y
}

// Square has four sides of length Side.
type Square[T Multiplicand] struct {
	Side T
}

func (s Square[T]) Area() T {
	return s.Side * s.Side
}

// Circle has a radius, but see the package doc about π.
type Circle[T Multiplicand] struct {
	Radius T
}

// Area returns Radius², without the factor of π.
func (c Circle[T]) Area() T {
	return c.Radius * c.Radius
}

var (
	_ Shape[int32]   = Rectangle[int32]{}
	_ Shape[uint]    = Square[uint]{}
	_ Shape[float64] = Circle[float64]{}
)

// Area returns the area of s.
func Area[T Multiplicand](s Shape[T]) T {
	return s.Area()
}

// Sum returns the total area of all shapes, or zero if there are none.
func Sum[T Multiplicand](shapes ...Shape[T]) T {
	var total T
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
