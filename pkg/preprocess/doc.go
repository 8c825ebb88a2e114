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

// Package preprocess runs a scenario over a batch of raw-data records.
//
// Records are independent, so the Runner processes them in parallel with a
// bounded errgroup. A failure in one record is recorded in Result.Failures
// and never aborts the others; only context cancellation stops the run.
//
//	s, _ := scenario.Get("rt")
//	runner := preprocess.NewRunner(s, preprocess.WithConcurrency(4))
//	res, err := runner.Run(ctx, raws)
//
// Result.Datasets follows input order, then the scenario's own order.
package preprocess
