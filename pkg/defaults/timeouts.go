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

package defaults

import "time"

// Preprocess handler timeouts.
const (
	// PreprocessHandlerTimeout bounds one POST /v1/preprocess request.
	PreprocessHandlerTimeout = 30 * time.Second

	// PreprocessRunTimeout bounds the batch run inside the handler, leaving
	// room to encode the response.
	PreprocessRunTimeout = 25 * time.Second
)

// Server timeouts.
const (
	ServerReadTimeout = 10 * time.Second

	ServerReadHeaderTimeout = 5 * time.Second

	ServerWriteTimeout = 30 * time.Second

	ServerIdleTimeout = 120 * time.Second

	ServerShutdownTimeout = 30 * time.Second
)

// Request limits.
const (
	// MaxRequestBodyBytes caps the size of a preprocess request body.
	MaxRequestBodyBytes int64 = 32 << 20

	// MaxInputsPerRequest caps the raw-data records in one request.
	MaxInputsPerRequest = 100
)
