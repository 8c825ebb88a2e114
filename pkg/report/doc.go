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

// Package report assembles the document describing one preprocessing run.
//
// A Report carries every dataset produced by the run, the inputs that failed,
// and the figures the datasets are grouped into according to the scenario
// layout. Figures reference datasets by index so points are written once.
//
//	res, err := preprocess.NewRunner(sc).Run(ctx, raws)
//	...
//	rep, err := report.New(sc, res, version)
//
// Report implements serializer.Tabular, rendering one row per dataset and
// per failed input.
//
// ScenarioList describes the scenarios of a registry and their layouts.
package report
