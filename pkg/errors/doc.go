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

// Package errors provides structured error types for programmatic handling of
// preprocessing failures.
//
// Every failure raised while turning one raw-data record into datasets carries
// an ErrorCode, so batch callers can classify and isolate it per input:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodePrecondition,
//	    "missing header column",
//	    map[string]any{
//	        "header":   "Bridge 1 Resistance (Ohms)",
//	        "raw_data": rawID,
//	    },
//	)
//
// Use CodeOf to read the code back from a wrapped error chain.
package errors
