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

package data

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Row is one acquired sample. Null cells hold NaN.
type Row []float64

// IsNull reports whether a cell holds no reading.
func IsNull(v float64) bool {
	return math.IsNaN(v)
}

// MarshalJSON encodes NaN cells as null.
func (r Row) MarshalJSON() ([]byte, error) {
	cells := make([]*float64, len(r))
	for i := range r {
		if !IsNull(r[i]) {
			cells[i] = &r[i]
		}
	}
	return json.Marshal(cells)
}

// UnmarshalJSON decodes null cells as NaN.
func (r *Row) UnmarshalJSON(b []byte) error {
	var cells []*float64
	if err := json.Unmarshal(b, &cells); err != nil {
		return err
	}
	*r = fromCells(cells)
	return nil
}

// MarshalYAML encodes NaN cells as null in flow style. Finite cells are left
// untagged so integral readings print as plain numbers.
func (r Row) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, v := range r {
		cell := &yaml.Node{Kind: yaml.ScalarNode}
		switch {
		case IsNull(v):
			cell.Tag, cell.Value = "!!null", "null"
		case math.IsInf(v, 1):
			cell.Tag, cell.Value = "!!float", ".inf"
		case math.IsInf(v, -1):
			cell.Tag, cell.Value = "!!float", "-.inf"
		default:
			cell.Value = strconv.FormatFloat(v, 'g', -1, 64)
		}
		node.Content = append(node.Content, cell)
	}
	return node, nil
}

// UnmarshalYAML decodes null and empty cells as NaN.
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("sample row must be a sequence, line %d", node.Line)
	}
	var cells []*float64
	if err := node.Decode(&cells); err != nil {
		return err
	}
	*r = fromCells(cells)
	return nil
}

func fromCells(cells []*float64) Row {
	row := make(Row, len(cells))
	for i, c := range cells {
		if c == nil {
			row[i] = math.NaN()
			continue
		}
		row[i] = *c
	}
	return row
}
