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

	"gopkg.in/yaml.v3"
)

// tagged is Value without its codec methods.
type tagged Value

// MarshalJSON encodes untagged values as bare scalars and tagged values as objects.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Unit == "" && !v.UnitAsPrefix {
		return json.Marshal(v.Value)
	}
	return json.Marshal(tagged(v))
}

// UnmarshalJSON accepts either a bare scalar or a tagged object.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var t tagged
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		t.Unit = NormalizeUnit(t.Unit)
		*v = Value(t)
		return nil
	}
	*v = Value{}
	return json.Unmarshal(data, &v.Value)
}

// MarshalYAML encodes untagged values as bare scalars and tagged values as mappings.
func (v Value) MarshalYAML() (any, error) {
	if v.Unit == "" && !v.UnitAsPrefix {
		return v.Value, nil
	}
	return tagged(v), nil
}

// UnmarshalYAML accepts either a bare scalar or a tagged mapping.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var t tagged
		if err := node.Decode(&t); err != nil {
			return err
		}
		t.Unit = NormalizeUnit(t.Unit)
		*v = Value(t)
		return nil
	}
	*v = Value{}
	return node.Decode(&v.Value)
}
