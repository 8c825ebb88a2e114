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

// Package logging provides structured logging utilities for majoplot components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so the CLI, the batch runner, and scenario implementations all log the same
// way: JSON to stderr, module and version attributes on every record, and
// source locations on debug records.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-stage and per-channel diagnostics, including dropped channels
//   - INFO: run summaries (default)
//   - WARN/WARNING: inputs that failed preprocessing
//   - ERROR: failures that abort a command
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("majoplot", version)
//	    slog.Info("preprocessing", "inputs", len(paths))
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("majoplot", "v1.0.0", "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit level
// is given:
//
//	LOG_LEVEL=debug majoplot preprocess --input run.dat
package logging
