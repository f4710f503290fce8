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

package report

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"lostluck.dev/shape-go"
)

func TestMeasurements(t *testing.T) {
	ms := []shape.Measurement{
		shape.Measure(shape.Rectangle{Width: 10, Height: 70}),
		shape.Measure(shape.Square{Side: 10}, shape.Name("tile")),
		shape.Measure(shape.Circle{Radius: 4.5}, shape.Name("pond")),
	}
	tests := []struct {
		name      string
		tag       language.Tag
		precision int
		want      string
	}{
		{
			name:      "english",
			tag:       language.English,
			precision: 3,
			want:      "rectangle: 700.000\ntile (square): 100.000\npond (circle): 63.585\n",
		}, {
			name:      "englishOneDigit",
			tag:       language.English,
			precision: 1,
			want:      "rectangle: 700.0\ntile (square): 100.0\npond (circle): 63.6\n",
		}, {
			name:      "german",
			tag:       language.German,
			precision: 3,
			want:      "rectangle: 700,000\ntile (square): 100,000\npond (circle): 63,585\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(test.tag, test.precision).Measurements(&buf, ms); err != nil {
				t.Fatalf("Measurements failed: %v", err)
			}
			if d := cmp.Diff(test.want, buf.String()); d != "" {
				t.Errorf("Measurements output diff (-want, +got):\n%v", d)
			}
		})
	}
}

func TestQuotient(t *testing.T) {
	var buf bytes.Buffer
	p := New(language.English, 2)
	if err := p.Quotient(&buf, 10, 4); err != nil {
		t.Fatal(err)
	}
	if err := p.Quotient(&buf, 10, 0); err != nil {
		t.Fatal(err)
	}
	want := "10 / 4 = 2.50\n10 / 0 = no result\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("Quotient output diff (-want, +got):\n%v", d)
	}
}
