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

// Package rt implements the resistance-versus-temperature scenario for PPMS
// resistivity logs.
//
// A raw log interleaves temperature sweeps at several magnetic fields and
// records three resistance bridges per sample. Preprocess turns one log into
// one dataset per bridge per field stage:
//
//  1. Segment splits the samples into contiguous runs sharing one rounded
//     field value. A field revisited after an excursion starts a new stage.
//  2. Extract pulls (temperature, resistance) pairs for a bridge, dropping
//     samples whose resistance is null or zero.
//  3. SummarizeCurrent condenses the retained excitation currents into "mean"
//     when they vary by less than the stable ratio, or "min~max" otherwise.
//  4. AssembleLabels attaches instrument, raw_data, date, bridge, sample
//     identity, field and current range labels.
//
// Datasets are returned in stage order, then bridge order. A bridge with no
// valid resistance in a stage produces no dataset.
//
// The scenario registers itself as "rt" in the scenario registry.
package rt
