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

// Package report renders measurements as human readable text, with
// numbers formatted for a language.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"lostluck.dev/shape-go"
)

// Printer writes localized report lines.
type Printer struct {
	p         *message.Printer
	precision int
}

// New returns a Printer for the language tag, printing areas with the
// given number of decimal places. Negative precision is treated as zero.
func New(tag language.Tag, precision int) *Printer {
	return &Printer{p: message.NewPrinter(tag), precision: max(precision, 0)}
}

func (p *Printer) number(v float64) string {
	return p.p.Sprintf(fmt.Sprintf("%%.%df", p.precision), v)
}

// Measurements writes one line per measurement.
func (p *Printer) Measurements(w io.Writer, ms []shape.Measurement) error {
	for _, m := range ms {
		var err error
		if kind := m.Kind.String(); m.Name == kind {
			_, err = fmt.Fprintf(w, "%s: %s\n", m.Name, p.number(m.Area))
		} else {
			_, err = fmt.Fprintf(w, "%s (%s): %s\n", m.Name, kind, p.number(m.Area))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Quotient writes the outcome of dividing x by y, which may have no result.
func (p *Printer) Quotient(w io.Writer, x, y float64) error {
	var err error
	if q, ok := shape.Divide(x, y); ok {
		_, err = fmt.Fprintf(w, "%s / %s = %s\n", p.p.Sprint(x), p.p.Sprint(y), p.number(q))
	} else {
		_, err = fmt.Fprintf(w, "%s / %s = no result\n", p.p.Sprint(x), p.p.Sprint(y))
	}
	return err
}
