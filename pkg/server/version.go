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

package server

import (
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is the default API version if none is negotiated
	DefaultAPIVersion = "v1"

	vendorMediaPrefix = "application/vnd.majoplot."
)

// negotiateAPIVersion extracts the API version from an Accept header such as
// application/vnd.majoplot.v1+json. Unknown or absent versions yield v1.
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	idx := strings.Index(accept, vendorMediaPrefix)
	if idx < 0 {
		return DefaultAPIVersion
	}

	rest := accept[idx+len(vendorMediaPrefix):]
	version, _, _ := strings.Cut(rest, "+")
	version, _, _ = strings.Cut(version, ",")
	if isValidAPIVersion(version) {
		return version
	}
	return DefaultAPIVersion
}

// isValidAPIVersion checks if the provided version string is a valid API version.
func isValidAPIVersion(version string) bool {
	validVersions := map[string]bool{
		"v1": true,
	}
	return validVersions[version]
}

// SetAPIVersionHeader sets the API version header in the response.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}

// APIVersionFromRequest returns the negotiated API version stored by the
// version middleware, or DefaultAPIVersion.
func APIVersionFromRequest(r *http.Request) string {
	if v, ok := r.Context().Value(contextKeyAPIVersion).(string); ok && v != "" {
		return v
	}
	return DefaultAPIVersion
}

// RequestIDFromRequest returns the request ID stored by the request ID
// middleware, or "".
func RequestIDFromRequest(r *http.Request) string {
	id, _ := r.Context().Value(contextKeyRequestID).(string)
	return id
}
