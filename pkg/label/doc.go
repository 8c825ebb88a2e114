// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package label provides the ordered label set attached to every dataset.
//
// A Set maps label names to typed values in insertion order. Values are plain
// scalars or strings, optionally tagged with a unit:
//
//	labels := label.NewSet()
//	labels.Set("instrument", label.String("PPMS"))
//	labels.Set("bridge", label.Prefixed(1, "Bridge"))
//	labels.Set("H", label.WithUnit(100, "Oe"))
//	labels.SetSummaryNames("H")
//
//	labels.Render("bridge") // "Bridge 1"
//	labels.Render("H")      // "100 Oe"
//
// Units are NFKC-normalized on construction so the MICRO SIGN (U+00B5) and the
// GREEK SMALL LETTER MU (U+03BC) spell the same unit.
//
// Order is part of the contract: JSON and YAML encodings emit labels in
// insertion order, and decoding preserves the order found in the document.
package label
