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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
)

var (
	inputsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "majoplot_preprocess_inputs_total",
			Help: "Total number of raw-data records processed, by scenario and outcome",
		},
		[]string{"scenario", "outcome"},
	)
	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "majoplot_preprocess_failures_total",
			Help: "Total number of failed raw-data records, by scenario and error code",
		},
		[]string{"scenario", "code"},
	)
	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "majoplot_preprocess_run_duration_seconds",
			Help:    "Duration of batch preprocessing runs in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"scenario"},
	)
)
