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

package rt

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "majoplot_rt_stages_total",
			Help: "Total number of field stages segmented from raw logs",
		},
	)
	datasetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "majoplot_rt_datasets_total",
			Help: "Total number of bridge datasets produced",
		},
	)
	channelsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "majoplot_rt_channels_dropped_total",
			Help: "Total number of stage/bridge pairs dropped because no resistance reading was valid",
		},
	)
)
