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

package plotspec

import (
	"github.com/majoplot/majoplot/pkg/data"
	"github.com/majoplot/majoplot/pkg/label"
)

// Axes is a group of datasets drawn on one set of axes.
type Axes struct {
	// Labels holds the axes label names shared by every dataset.
	Labels   *label.Set      `json:"labels" yaml:"labels"`
	Datasets []*data.Dataset `json:"datasets" yaml:"datasets"`
}

// Figure is a group of axes drawn on one canvas.
type Figure struct {
	// Labels holds the figure label names shared by every axes.
	Labels *label.Set `json:"labels" yaml:"labels"`
	Axes   []*Axes    `json:"axes" yaml:"axes"`
}

// GroupAxes groups datasets by the rendered values of names, keeping the
// order in which each group is first seen and the dataset order within it.
func GroupAxes(datasets []*data.Dataset, names []string) []*Axes {
	index := make(map[string]*Axes)
	var out []*Axes
	for _, ds := range datasets {
		key := ds.Labels.Key(names...)
		ax, ok := index[key]
		if !ok {
			ax = &Axes{Labels: ds.Labels.Subset(names...)}
			index[key] = ax
			out = append(out, ax)
		}
		ax.Datasets = append(ax.Datasets, ds)
	}
	return out
}

// GroupFigures groups axes by the rendered values of names and splits each
// group into figures holding at most maxAxes axes. maxAxes < 1 means no limit.
func GroupFigures(axes []*Axes, names []string, maxAxes int) []*Figure {
	type group struct {
		labels *label.Set
		axes   []*Axes
	}
	index := make(map[string]*group)
	var groups []*group
	for _, ax := range axes {
		key := ax.Labels.Key(names...)
		g, ok := index[key]
		if !ok {
			g = &group{labels: ax.Labels.Subset(names...)}
			index[key] = g
			groups = append(groups, g)
		}
		g.axes = append(g.axes, ax)
	}

	var out []*Figure
	for _, g := range groups {
		step := len(g.axes)
		if maxAxes > 0 {
			step = maxAxes
		}
		for start := 0; start < len(g.axes); start += step {
			end := min(start+step, len(g.axes))
			out = append(out, &Figure{Labels: g.labels.Clone(), Axes: g.axes[start:end]})
		}
	}
	return out
}
