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
	"github.com/majoplot/majoplot/pkg/label"
)

// IgnoreOutlierSpec tells the renderer which isolated points to leave out of
// axis autoscaling. A point is an outlier when its gap to the neighbouring
// points exceeds MinGapMultiple times the typical gap, with MinGapBase as the
// floor of that typical gap.
type IgnoreOutlierSpec struct {
	MinGapBase     float64 `json:"minGapBase" yaml:"minGapBase"`
	MinGapMultiple float64 `json:"minGapMultiple" yaml:"minGapMultiple"`
}

// Dataset is one labeled 2-column series ready for analysis.
type Dataset struct {
	// Headers names the two columns of Points.
	Headers [2]string `json:"headers" yaml:"headers"`

	// Points holds (x, y) pairs in acquisition order.
	Points [][2]float64 `json:"points" yaml:"points"`

	// Labels identifies the dataset.
	Labels *label.Set `json:"labels" yaml:"labels"`

	// IgnoreOutliers is an optional hint for the renderer.
	IgnoreOutliers *IgnoreOutlierSpec `json:"ignoreOutliers,omitempty" yaml:"ignoreOutliers,omitempty"`
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	return len(d.Points)
}

// Empty reports whether the dataset holds no points.
func (d *Dataset) Empty() bool {
	return len(d.Points) == 0
}

// Column returns a copy of column i (0 or 1).
func (d *Dataset) Column(i int) []float64 {
	out := make([]float64, len(d.Points))
	for j, p := range d.Points {
		out[j] = p[i]
	}
	return out
}
