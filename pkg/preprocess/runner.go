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

package preprocess

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/scenario"
)

// Failure describes one raw-data record that could not be preprocessed.
type Failure struct {
	Index   int                 `json:"index" yaml:"index"`
	RawData string              `json:"rawData,omitempty" yaml:"rawData,omitempty"`
	Code    apperrors.ErrorCode `json:"code" yaml:"code"`
	Message string              `json:"message" yaml:"message"`
	Err     error               `json:"-" yaml:"-"`
}

// Result is the outcome of one batch run.
type Result struct {
	ID       string          `json:"id" yaml:"id"`
	Scenario string          `json:"scenario" yaml:"scenario"`
	Inputs   int             `json:"inputs" yaml:"inputs"`
	Datasets []*data.Dataset `json:"datasets" yaml:"datasets"`
	Failures []Failure       `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Succeeded returns the number of records that produced no error.
func (r *Result) Succeeded() int {
	return r.Inputs - len(r.Failures)
}

// Runner applies a scenario to batches of raw-data records.
type Runner struct {
	scenario    scenario.Scenario
	concurrency int
}

// Option is a functional option for configuring a Runner.
type Option func(*Runner)

// WithConcurrency bounds the number of records processed at once.
// Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// NewRunner creates a Runner for s.
func NewRunner(s scenario.Scenario, opts ...Option) *Runner {
	r := &Runner{scenario: s}
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency < 1 {
		r.concurrency = runtime.GOMAXPROCS(0)
	}
	return r
}

type outcome struct {
	datasets []*data.Dataset
	err      error
}

// Run preprocesses every record. Per-record failures are collected in the
// result; the returned error is non-nil only when ctx ends the run.
func (r *Runner) Run(ctx context.Context, raws []*data.RawData) (*Result, error) {
	name := r.scenario.Name()
	start := time.Now()
	defer func() {
		runDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	outcomes := make([]outcome, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, raw := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			datasets, err := r.scenario.Preprocess(gctx, raw)
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			outcomes[i] = outcome{datasets: datasets, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("preprocessing canceled: %w", err)
	}

	res := &Result{
		ID:       uuid.NewString(),
		Scenario: name,
		Inputs:   len(raws),
	}
	for i, o := range outcomes {
		if o.err != nil {
			res.Failures = append(res.Failures, r.fail(i, raws[i], o.err))
			continue
		}
		inputsTotal.WithLabelValues(name, outcomeSucceeded).Inc()
		res.Datasets = append(res.Datasets, o.datasets...)
	}

	slog.Info("preprocessing complete",
		"run", res.ID,
		"scenario", name,
		"inputs", res.Inputs,
		"failed", len(res.Failures),
		"datasets", len(res.Datasets),
		"duration", time.Since(start))
	return res, nil
}

func (r *Runner) fail(i int, raw *data.RawData, err error) Failure {
	name := r.scenario.Name()
	code := apperrors.CodeOf(err)
	inputsTotal.WithLabelValues(name, outcomeFailed).Inc()
	failuresTotal.WithLabelValues(name, string(code)).Inc()

	f := Failure{
		Index:   i,
		RawData: raw.ID(),
		Code:    code,
		Message: err.Error(),
		Err:     err,
	}
	slog.Warn("raw data failed preprocessing",
		"index", f.Index,
		"raw_data", f.RawData,
		"code", f.Code,
		"error", err)
	return f
}
