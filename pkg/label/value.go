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

package label

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Value is a single label value with an optional unit tag.
type Value struct {
	// Value is the raw value: a string, an integer, or a float.
	Value any `json:"value" yaml:"value"`

	// Unit is the descriptive unit tag, e.g. "Oe" or "μA".
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	// UnitAsPrefix renders the unit before the value ("Bridge 1") instead of
	// after it ("100 Oe").
	UnitAsPrefix bool `json:"unitAsPrefix,omitempty" yaml:"unitAsPrefix,omitempty"`
}

// String creates an untagged string value.
func String(s string) Value {
	return Value{Value: s}
}

// WithUnit creates a value rendered with its unit as a postfix.
func WithUnit(v any, unit string) Value {
	return Value{Value: v, Unit: NormalizeUnit(unit)}
}

// Prefixed creates a value rendered with its unit as a prefix.
func Prefixed(v any, unit string) Value {
	return Value{Value: v, Unit: NormalizeUnit(unit), UnitAsPrefix: true}
}

// NormalizeUnit returns the NFKC form of a unit string.
func NormalizeUnit(unit string) string {
	return norm.NFKC.String(unit)
}

// Text renders the bare value without its unit.
func (v Value) Text() string {
	switch x := v.Value.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}

// String renders the value together with its unit.
func (v Value) String() string {
	text := v.Text()
	if v.Unit == "" {
		return text
	}
	if v.UnitAsPrefix {
		return v.Unit + " " + text
	}
	return text + " " + v.Unit
}

// Equal reports whether two values render identically and carry the same unit.
func (v Value) Equal(o Value) bool {
	return v.Text() == o.Text() &&
		NormalizeUnit(v.Unit) == NormalizeUnit(o.Unit) &&
		v.UnitAsPrefix == o.UnitAsPrefix
}
