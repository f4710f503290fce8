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

// Package shape is a small area evaluator over a closed set of shapes.
// It exists to explore how Go expresses sum types and numeric generics,
// without leaning on open interfaces for dispatch.
//
// Shapes are plain values: a Rectangle, a Square, or a Circle. There is no
// other kind, and no package outside this one can add one, so Area can
// handle every variant in a single type switch.
//
// Things worth knowing.
//   - Circles use the fixed approximation Pi = 3.14.
//   - Every area is normalized to float64, regardless of the variant.
//   - Division that can have no result reports that with a bool, not a sentinel.
//   - The generic formulation lives in the generic sub package, and keeps its
//     own numeric type throughout.
package shape
