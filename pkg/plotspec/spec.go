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

// TickSpec configures major ticks. Zero fields fall back to renderer defaults.
type TickSpec struct {
	Direction string  `json:"direction,omitempty" yaml:"direction,omitempty"`
	Length    float64 `json:"length,omitempty" yaml:"length,omitempty"`
	Width     float64 `json:"width,omitempty" yaml:"width,omitempty"`
	LabelSize float64 `json:"labelSize,omitempty" yaml:"labelSize,omitempty"`
}

// GridSpec configures grid lines.
type GridSpec struct {
	LineStyle string  `json:"lineStyle,omitempty" yaml:"lineStyle,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty" yaml:"lineWidth,omitempty"`
	Alpha     float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
}

// LegendSpec configures the per-axes legend.
type LegendSpec struct {
	FontSize float64 `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Location string  `json:"location,omitempty" yaml:"location,omitempty"`
}

// AxesSpec describes one set of axes.
// A nil MajorGrid means no grid; a nil MajorTick means no major ticks.
type AxesSpec struct {
	XAxisTitle string      `json:"xAxisTitle" yaml:"xAxisTitle"`
	YAxisTitle string      `json:"yAxisTitle" yaml:"yAxisTitle"`
	MajorGrid  *GridSpec   `json:"majorGrid,omitempty" yaml:"majorGrid,omitempty"`
	MajorTick  *TickSpec   `json:"majorTick,omitempty" yaml:"majorTick,omitempty"`
	Legend     *LegendSpec `json:"legend,omitempty" yaml:"legend,omitempty"`
	LineWidth  float64     `json:"lineWidth" yaml:"lineWidth"`
	MarkerSize float64     `json:"markerSize" yaml:"markerSize"`
}

// FigureSpec describes one figure. Style cycles are applied to datasets in
// order, wrapping around.
type FigureSpec struct {
	Name            string     `json:"name" yaml:"name"`
	Title           string     `json:"title,omitempty" yaml:"title,omitempty"`
	FigSize         [2]float64 `json:"figSize" yaml:"figSize"`
	LineStyleCycle  []string   `json:"lineStyleCycle" yaml:"lineStyleCycle"`
	LineMarkerCycle []string   `json:"lineMarkerCycle" yaml:"lineMarkerCycle"`
	LineColorCycle  []string   `json:"lineColorCycle" yaml:"lineColorCycle"`
	AlphaCycle      []float64  `json:"alphaCycle" yaml:"alphaCycle"`
}

// MultiAxesSpec arranges several axes inside one figure.
type MultiAxesSpec struct {
	Rows   int  `json:"rows" yaml:"rows"`
	Cols   int  `json:"cols" yaml:"cols"`
	ShareX bool `json:"shareX,omitempty" yaml:"shareX,omitempty"`
	ShareY bool `json:"shareY,omitempty" yaml:"shareY,omitempty"`
}

// Style returns the style for the i-th dataset of a figure.
func (f FigureSpec) Style(i int) (lineStyle, marker, color string, alpha float64) {
	return pick(f.LineStyleCycle, i), pick(f.LineMarkerCycle, i), pick(f.LineColorCycle, i), pickFloat(f.AlphaCycle, i)
}

func pick(cycle []string, i int) string {
	if len(cycle) == 0 {
		return ""
	}
	return cycle[i%len(cycle)]
}

func pickFloat(cycle []float64, i int) float64 {
	if len(cycle) == 0 {
		return 1
	}
	return cycle[i%len(cycle)]
}
