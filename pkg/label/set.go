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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is an insertion-ordered mapping of label names to values, plus the
// subset of names used for cross-dataset summary grouping.
// The zero value is ready to use.
type Set struct {
	names        []string
	values       map[string]Value
	summaryNames []string
}

// NewSet creates an empty label set.
func NewSet() *Set {
	return &Set{values: make(map[string]Value)}
}

// Set stores a value. Replacing an existing name keeps its position.
func (s *Set) Set(name string, v Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	if _, exists := s.values[name]; !exists {
		s.names = append(s.names, name)
	}
	s.values[name] = v
}

// Get returns the value stored under name.
func (s *Set) Get(name string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether name is present.
func (s *Set) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Len returns the number of labels.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns the label names in insertion order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Render returns the rendered value of name, or "" when absent.
func (s *Set) Render(name string) string {
	v, ok := s.Get(name)
	if !ok {
		return ""
	}
	return v.String()
}

// SetSummaryNames declares which labels participate in summary grouping.
func (s *Set) SetSummaryNames(names ...string) {
	s.summaryNames = append([]string(nil), names...)
}

// SummaryNames returns the labels that participate in summary grouping.
func (s *Set) SummaryNames() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.summaryNames...)
}

// Summary renders the summary labels, e.g. "100 Oe".
func (s *Set) Summary() string {
	return s.BriefSummary(s.SummaryNames()...)
}

// BriefSummary joins the rendered values of names with a single space,
// skipping names that are absent.
func (s *Set) BriefSummary(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if v, ok := s.Get(n); ok {
			parts = append(parts, v.String())
		}
	}
	return strings.Join(parts, " ")
}

// Key returns a grouping key built from the rendered values of names.
// Absent names contribute an empty component.
func (s *Set) Key(names ...string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = s.Render(n)
	}
	return strings.Join(parts, "\x1f")
}

// Subset returns a new set holding only names, in the order given.
func (s *Set) Subset(names ...string) *Set {
	out := NewSet()
	for _, n := range names {
		if v, ok := s.Get(n); ok {
			out.Set(n, v)
		}
	}
	return out
}

// Clone returns a deep copy of the set structure.
func (s *Set) Clone() *Set {
	out := NewSet()
	if s == nil {
		return out
	}
	for _, n := range s.names {
		out.Set(n, s.values[n])
	}
	out.summaryNames = s.SummaryNames()
	return out
}

// MarshalJSON encodes the set as a JSON object in insertion order.
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range s.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.values[n])
		if err != nil {
			return nil, fmt.Errorf("failed to encode label %q: %w", n, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving key order.
func (s *Set) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("labels must be a JSON object")
	}

	*s = Set{values: make(map[string]Value)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected label key %v", tok)
		}
		var v Value
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("failed to decode label %q: %w", name, err)
		}
		s.Set(name, v)
	}
	_, err = dec.Token()
	return err
}

// MarshalYAML encodes the set as an ordered YAML mapping.
func (s *Set) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, n := range s.Names() {
		var val yaml.Node
		if err := val.Encode(s.values[n]); err != nil {
			return nil, fmt.Errorf("failed to encode label %q: %w", n, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n},
			&val,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, preserving key order.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("labels must be a YAML mapping, line %d", node.Line)
	}
	*s = Set{values: make(map[string]Value)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var v Value
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("failed to decode label %q: %w", name, err)
		}
		s.Set(name, v)
	}
	return nil
}
