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

// Package api provides the HTTP API layer for the majoplot preprocessing service.
//
// This package is a thin wrapper around pkg/server, configuring it with the
// preprocessing routes. It exposes the same pipeline as the majoplot CLI:
// raw-data records go in, a report with labeled datasets, failures and
// figure groupings comes out.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /v1/preprocess - Run a scenario over raw-data records (JSON/YAML body)
//   - GET /v1/scenarios   - List registered scenarios and their layouts
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /v1/preprocess)
//
// The body holds a scenario name (default "rt") and a list of RawData
// records. Content-Type selects JSON or YAML; the Accept header selects the
// response encoding. Missing values in points are written as null.
//
//	scenario: rt
//	inputs:
//	  - headers:
//	      Temperature (K): 0
//	      Magnetic Field (Oe): 1
//	      Bridge 1 Resistance (Ohms): 2
//	      Bridge 1 Excitation (uA): 3
//	    points:
//	      - [300, 100, 1.5, 10]
//	    labels:
//	      instrument: PPMS
//	      raw_data: run-01
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/preprocess \
//	  -H "Content-Type: application/yaml" \
//	  -d @request.yaml
//
// Records that fail preprocessing are reported under "failures" in a 200
// response. Malformed bodies get 400, bodies over the size limit 413,
// unknown scenarios 404 and runs that exceed the time limit 504.
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/majoplot/majoplot/pkg/api.version=1.0.0'"
package api
