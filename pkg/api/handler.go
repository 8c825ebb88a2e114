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

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/majoplot/majoplot/pkg/data"
	"github.com/majoplot/majoplot/pkg/defaults"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/label"
	"github.com/majoplot/majoplot/pkg/preprocess"
	"github.com/majoplot/majoplot/pkg/report"
	"github.com/majoplot/majoplot/pkg/scenario"
	"github.com/majoplot/majoplot/pkg/serializer"
	"github.com/majoplot/majoplot/pkg/server"
)

// DefaultScenario is used when a request names no scenario.
const DefaultScenario = "rt"

// PreprocessRequest is the body accepted by POST /v1/preprocess.
type PreprocessRequest struct {
	Scenario string          `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	Inputs   []*data.RawData `json:"inputs" yaml:"inputs"`
}

// Handler serves the preprocessing API.
type Handler struct {
	registry    *scenario.Registry
	version     string
	concurrency int
	maxInputs   int
}

// Option is a functional option for configuring a Handler.
type Option func(*Handler)

// WithRegistry sets the scenario registry. Defaults to scenario.Global().
func WithRegistry(reg *scenario.Registry) Option {
	return func(h *Handler) {
		if reg != nil {
			h.registry = reg
		}
	}
}

// WithVersion sets the version stamped on response documents.
func WithVersion(v string) Option {
	return func(h *Handler) {
		h.version = v
	}
}

// WithConcurrency bounds the records preprocessed in parallel per request.
func WithConcurrency(n int) Option {
	return func(h *Handler) {
		h.concurrency = n
	}
}

// WithMaxInputs caps the number of records accepted per request.
func WithMaxInputs(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxInputs = n
		}
	}
}

// NewHandler creates a Handler.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		registry:  scenario.Global(),
		maxInputs: defaults.MaxInputsPerRequest,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandlePreprocess runs a scenario over the raw-data records in the request
// body (JSON or YAML by Content-Type) and responds with the report document.
// Per-record failures are part of a 200 response.
func (h *Handler) HandlePreprocess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.PreprocessHandlerTimeout)
	defer cancel()

	req, err := h.decodeRequest(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, apperrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{"limit": tooLarge.Limit})
			return
		}
		server.WriteErrorFromErr(w, r, err, "Invalid preprocess request", nil)
		return
	}

	sc, err := h.registry.Get(req.Scenario)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Unknown scenario", nil)
		return
	}

	slog.Debug("preprocess request",
		"requestID", server.RequestIDFromRequest(r),
		"scenario", req.Scenario,
		"inputs", len(req.Inputs),
	)

	runCtx, runCancel := context.WithTimeout(ctx, defaults.PreprocessRunTimeout)
	defer runCancel()

	res, err := preprocess.NewRunner(sc, preprocess.WithConcurrency(h.concurrency)).Run(runCtx, req.Inputs)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			server.WriteErrorFromErr(w, r,
				apperrors.Wrap(apperrors.ErrCodeTimeout, "Preprocessing timed out", err),
				"Preprocessing timed out", nil)
			return
		}
		server.WriteErrorFromErr(w, r,
			apperrors.Wrap(apperrors.ErrCodeUnavailable, "Preprocessing canceled", err),
			"Preprocessing canceled", nil)
		return
	}

	rep, err := report.New(sc, res, h.version)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to build report", nil)
		return
	}

	serializer.Respond(w, r, http.StatusOK, rep)
}

// HandleScenarios lists the registered scenarios.
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	list, err := report.NewScenarioList(h.registry, h.version)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list scenarios", nil)
		return
	}

	serializer.Respond(w, r, http.StatusOK, list)
}

// decodeRequest reads and validates the request body. Records without a
// raw_data label are named after their position.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (*PreprocessRequest, error) {
	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)

	reader, err := serializer.NewReader(serializer.FormatFromMediaType(r.Header.Get("Content-Type")), body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "unsupported content type", err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Debug("failed to close request body", "error", closeErr)
		}
	}()

	var req PreprocessRequest
	if err := reader.Deserialize(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "malformed request body", err)
	}

	if req.Scenario == "" {
		req.Scenario = DefaultScenario
	}
	if len(req.Inputs) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "at least one input is required")
	}
	if len(req.Inputs) > h.maxInputs {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("too many inputs: %d", len(req.Inputs)),
			map[string]any{"limit": h.maxInputs})
	}

	for i, raw := range req.Inputs {
		if raw == nil {
			continue
		}
		if raw.Labels == nil {
			raw.Labels = label.NewSet()
		}
		if !raw.Labels.Has(data.LabelRawData) {
			raw.Labels.Set(data.LabelRawData, label.String(fmt.Sprintf("input-%d", i)))
		}
	}
	return &req, nil
}
