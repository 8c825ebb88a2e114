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

package serializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"gopkg.in/yaml.v3"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Serialize first to detect errors before writing headers
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// RespondYAML writes a YAML response with the given status code and data.
func RespondYAML(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/yaml")

	content, err := yaml.Marshal(data)
	if err != nil {
		slog.Error("yaml encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(content); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// Respond writes data as YAML when the request accepts YAML and JSON otherwise.
func Respond(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	if FormatFromMediaType(r.Header.Get("Accept")) == FormatYAML {
		RespondYAML(w, statusCode, data)
		return
	}
	RespondJSON(w, statusCode, data)
}
