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

// Package serializer provides encoding and decoding of majoplot documents.
//
// Raw-data records can be read from JSON or YAML, and preprocessing results
// written as JSON, YAML, or a terminal table.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable representation
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Column-aligned text for terminal viewing
//   - Values implementing Tabular render as their own rows; anything else is
//     flattened into FIELD/VALUE pairs
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// # Usage - Decoding
//
//	raw, err := serializer.FromFile[data.RawData]("run-01.yaml")
//
// Format detection by extension:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
package serializer
