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

// Package data defines the raw instrument records consumed by scenarios and
// the datasets they produce.
//
// A RawData record is a header→column index, a 2-D sample array, and a label
// set. Null cells are stored as NaN; JSON and YAML null decode to NaN and NaN
// encodes back to null, so records survive a round trip through the serializer
// package unchanged.
package data
