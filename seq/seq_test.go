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

package seq

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFibonacci(t *testing.T) {
	want := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	if d := cmp.Diff(want, Take(Fibonacci(), 10)); d != "" {
		t.Errorf("Fibonacci prefix diff (-want, +got):\n%v", d)
	}
}

func TestFibonacci_stopsBeforeOverflow(t *testing.T) {
	var all []uint64
	for f := range Fibonacci() {
		all = append(all, f)
	}
	// F(0) through F(93); F(94) exceeds a uint64.
	if got, want := len(all), 94; got != want {
		t.Fatalf("Fibonacci yielded %v values, want %v", got, want)
	}
	if got, want := all[len(all)-1], uint64(12200160415121876738); got != want {
		t.Errorf("last Fibonacci value = %v, want %v", got, want)
	}
	for i := 2; i < len(all); i++ {
		if all[i] != all[i-1]+all[i-2] {
			t.Fatalf("Fibonacci[%d] = %v, want %v", i, all[i], all[i-1]+all[i-2])
		}
	}
}

func TestTake(t *testing.T) {
	s := slices.Values([]string{"a", "b", "c"})
	tests := []struct {
		n    int
		want []string
	}{
		{n: -1, want: nil},
		{n: 0, want: nil},
		{n: 2, want: []string{"a", "b"}},
		{n: 5, want: []string{"a", "b", "c"}},
	}
	for _, test := range tests {
		if d := cmp.Diff(test.want, Take(s, test.n)); d != "" {
			t.Errorf("Take(%v) diff (-want, +got):\n%v", test.n, d)
		}
	}
}

func TestCount(t *testing.T) {
	v := []int32{4, 5, 3, 6, 7, 4, 8, 6, 4, 2, 4, 2, 5, 3, 7, 7}
	tests := []struct {
		value int32
		want  int
	}{
		{4, 4},
		{7, 3},
		{2, 2},
		{8, 1},
		{9, 0},
	}
	for _, test := range tests {
		if got := Count(slices.Values(v), test.value); got != test.want {
			t.Errorf("Count(%v) = %v, want %v", test.value, got, test.want)
		}
	}
	if got, want := Count(Fibonacci(), 1), 2; got != want {
		t.Errorf("Count(Fibonacci(), 1) = %v, want %v", got, want)
	}
}
