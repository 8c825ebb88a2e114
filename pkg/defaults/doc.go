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

// Package defaults provides centralized configuration constants for majoplot.
//
// Timeouts and request limits used by the HTTP API and the batch runner live
// here so the CLI and the server agree on them.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.PreprocessHandlerTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - Preprocess handler: 30s, with the run itself bounded a little earlier
//   - Server shutdown: 30s for graceful shutdown
//   - Request bodies: 32 MiB, enough for a few long PPMS sweeps
package defaults
