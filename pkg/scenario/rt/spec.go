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
	"github.com/majoplot/majoplot/pkg/data"
	"github.com/majoplot/majoplot/pkg/label"
	"github.com/majoplot/majoplot/pkg/plotspec"
	"github.com/majoplot/majoplot/pkg/scenario"
)

// FigSize is the figure size in inches.
var FigSize = [2]float64{8, 6}

// Palette is the line color cycle.
var Palette = []string{
	"#515151", "#F14040", "#1A6FDF", "#37AD6B", "#B177DE",
	"#CC9900", "#00CBCC", "#7D4E4E", "#8E8E00", "#FB6501",
	"#6699CC", "#6FB802", "#FD0000FF", "#15ff00", "#FF9447",
	"#fdbb2d", "#fcfdbf", "#2B2E83", "#E6007A", "#00FFFF",
	"#6DFFA7", "#FDBAFD", "#FAB3d1",
}

// Layout implements scenario.Scenario. Every bridge of every log gets its own
// figure; field stages share the axes and are told apart by the legend.
func (s *Scenario) Layout() scenario.Layout {
	return scenario.Layout{
		DataSummaryLabelNames:   []string{LabelField},
		AxesLabelNames:          []string{data.LabelDate, data.LabelRawData, LabelBridge, LabelSampleName},
		FigureLabelNames:        []string{data.LabelDate, data.LabelRawData, LabelBridge, LabelSampleName},
		FigureSummaryLabelNames: []string{data.LabelRawData, LabelBridge, LabelSampleName},
		MaxAxesInOneFigure:      1,
		ProjectToChildFolder:    map[string]string{data.LabelDate: LabelSampleName},
		ParentFolder:            "RT",
	}
}

// AxesSpec implements scenario.Scenario.
func (s *Scenario) AxesSpec(_ *label.Set, _ []*data.Dataset) plotspec.AxesSpec {
	return plotspec.AxesSpec{
		XAxisTitle: HeaderTemperature,
		YAxisTitle: HeaderResistance,
		MajorGrid:  nil,
		MajorTick:  &plotspec.TickSpec{},
		Legend:     &plotspec.LegendSpec{FontSize: 5},
		LineWidth:  1,
		MarkerSize: 2,
	}
}

// FigureSpec implements scenario.Scenario.
func (s *Scenario) FigureSpec(figureLabels *label.Set, _ []*plotspec.Axes) plotspec.FigureSpec {
	return plotspec.FigureSpec{
		Name:            figureLabels.BriefSummary(s.Layout().FigureSummaryLabelNames...),
		FigSize:         FigSize,
		LineStyleCycle:  []string{"-"},
		LineMarkerCycle: []string{"o"},
		LineColorCycle:  append([]string(nil), Palette...),
		AlphaCycle:      []float64{1.0},
	}
}

// MultiAxesSpec implements scenario.Scenario. RT figures hold a single axes.
func (s *Scenario) MultiAxesSpec(_ []*plotspec.Axes) (*plotspec.MultiAxesSpec, error) {
	return nil, nil
}
