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

// Package seq has small helpers over iter.Seq, and a Fibonacci generator.
package seq

import "iter"

// Fibonacci yields the Fibonacci numbers 0, 1, 1, 2, 3, 5, ... and stops
// after the largest one that fits in a uint64.
func Fibonacci() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		a, b := uint64(0), uint64(1)
		for {
			if !yield(a) {
				return
			}
			// b wrapped around.
			if b < a {
				return
			}
			a, b = b, a+b
		}
	}
}

// Take returns up to the first n elements of s.
func Take[E any](s iter.Seq[E], n int) []E {
	if n <= 0 {
		return nil
	}
	out := make([]E, 0, n)
	for e := range s {
		out = append(out, e)
		if len(out) == n {
			break
		}
	}
	return out
}

// Count returns how many elements of s equal v.
func Count[E comparable](s iter.Seq[E], v E) int {
	var n int
	for e := range s {
		if e == v {
			n++
		}
	}
	return n
}
