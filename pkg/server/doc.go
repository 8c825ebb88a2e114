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

// Package server provides the HTTP server hosting the majoplot API.
//
// The server is generic: it owns the listener, middleware, probes and
// metrics, while API handlers are supplied by the caller through
// WithHandler (see pkg/api).
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for tracing
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes
//   - Prometheus metrics at /metrics
//
// # Usage
//
//	s := server.New(
//	    server.WithName("majoplotd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/preprocess": h.HandlePreprocess,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
// GET / - Service name, version, readiness and routes
//
// GET /health - Liveness probe, always 200 OK
//
// GET /ready - Readiness probe, 200 when ready, 503 otherwise
//
// GET /metrics - Prometheus metrics
//
// # Observability
//
// All API requests accept an optional X-Request-Id header (UUID format).
// If not provided, the server generates one. The request ID is returned in
// the X-Request-Id response header and included in all error responses.
//
// Rate limited requests get 429 with a Retry-After header; accepted ones
// carry X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "PRECONDITION",
//	  "message": "raw sample list is empty",
//	  "details": {"raw_data": "run-01"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
package server
