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

package data

import (
	"fmt"

	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/label"
)

// Well-known raw label names every loader populates.
const (
	LabelInstrument = "instrument"
	LabelRawData    = "raw_data"
	LabelDate       = "date"
)

// SampleNameLabel returns the raw label holding the sample name wired to a channel.
func SampleNameLabel(channel int) string {
	return fmt.Sprintf("sample%d_name", channel)
}

// SampleUnitsLabel returns the raw label holding the sample units wired to a channel.
func SampleUnitsLabel(channel int) string {
	return fmt.Sprintf("sample%d_units", channel)
}

// RawData is one instrument log as handed over by a loader.
type RawData struct {
	// Headers maps column titles to indexes into each Row.
	Headers map[string]int `json:"headers" yaml:"headers"`

	// Points holds the samples in acquisition order.
	Points []Row `json:"points" yaml:"points"`

	// Labels carries identifying metadata (instrument, raw_data, date, sample names).
	Labels *label.Set `json:"labels" yaml:"labels"`
}

// NewRawData builds a record from ordered column titles.
// Duplicate titles resolve to their first occurrence.
func NewRawData(columns []string, points []Row, labels *label.Set) *RawData {
	headers := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, exists := headers[c]; !exists {
			headers[c] = i
		}
	}
	if labels == nil {
		labels = label.NewSet()
	}
	return &RawData{
		Headers: headers,
		Points:  points,
		Labels:  labels,
	}
}

// ID returns the raw-data identifier label, or "" when absent.
func (r *RawData) ID() string {
	if r == nil {
		return ""
	}
	return r.Labels.Render(LabelRawData)
}

// Column resolves a header to its column index.
func (r *RawData) Column(name string) (int, error) {
	idx, ok := r.Headers[name]
	if !ok {
		return 0, apperrors.NewWithContext(apperrors.ErrCodePrecondition,
			"missing header column", map[string]any{
				"header":   name,
				"raw_data": r.ID(),
			})
	}
	return idx, nil
}

// Validate checks the record is non-empty and every row covers every header.
func (r *RawData) Validate() error {
	if r == nil {
		return apperrors.New(apperrors.ErrCodePrecondition, "raw data is nil")
	}
	if len(r.Points) == 0 {
		return apperrors.NewWithContext(apperrors.ErrCodePrecondition,
			"raw sample list is empty", map[string]any{"raw_data": r.ID()})
	}

	width := 0
	for _, idx := range r.Headers {
		if idx < 0 {
			return apperrors.NewWithContext(apperrors.ErrCodePrecondition,
				"negative header index", map[string]any{"raw_data": r.ID(), "index": idx})
		}
		if idx+1 > width {
			width = idx + 1
		}
	}
	for i, row := range r.Points {
		if len(row) < width {
			return apperrors.NewWithContext(apperrors.ErrCodePrecondition,
				"sample row shorter than header", map[string]any{
					"raw_data": r.ID(),
					"row":      i,
					"cells":    len(row),
					"expected": width,
				})
		}
	}
	return nil
}
