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

package scenario

import (
	"context"

	"github.com/majoplot/majoplot/pkg/data"
	"github.com/majoplot/majoplot/pkg/label"
	"github.com/majoplot/majoplot/pkg/plotspec"
)

// Scenario turns raw instrument logs into labeled datasets and describes how
// the resulting datasets are grouped and styled.
type Scenario interface {
	// Name returns the registry name of the scenario.
	Name() string

	// Layout returns the label names that drive grouping.
	Layout() Layout

	// Preprocess converts one raw record into datasets. It must not retain raw.
	Preprocess(ctx context.Context, raw *data.RawData) ([]*data.Dataset, error)

	// AxesSpec describes the axes holding pool.
	AxesSpec(axesLabels *label.Set, pool []*data.Dataset) plotspec.AxesSpec

	// FigureSpec describes the figure holding axes.
	FigureSpec(figureLabels *label.Set, axes []*plotspec.Axes) plotspec.FigureSpec

	// MultiAxesSpec arranges several axes in one figure.
	// A nil spec with a nil error means the default arrangement.
	MultiAxesSpec(axes []*plotspec.Axes) (*plotspec.MultiAxesSpec, error)
}

// Layout names the labels a scenario groups by.
type Layout struct {
	// DataSummaryLabelNames distinguish datasets sharing one axes (legend entries).
	DataSummaryLabelNames []string `json:"dataSummaryLabelNames" yaml:"dataSummaryLabelNames"`

	// AxesLabelNames group datasets onto one axes.
	AxesLabelNames []string `json:"axesLabelNames" yaml:"axesLabelNames"`

	// FigureLabelNames group axes into one figure.
	FigureLabelNames []string `json:"figureLabelNames" yaml:"figureLabelNames"`

	// FigureSummaryLabelNames build the figure name.
	FigureSummaryLabelNames []string `json:"figureSummaryLabelNames" yaml:"figureSummaryLabelNames"`

	// MaxAxesInOneFigure caps the axes per figure; < 1 means no cap.
	MaxAxesInOneFigure int `json:"maxAxesInOneFigure" yaml:"maxAxesInOneFigure"`

	// ProjectToChildFolder maps a parent folder label to the child folder label.
	ProjectToChildFolder map[string]string `json:"projectToChildFolder,omitempty" yaml:"projectToChildFolder,omitempty"`

	// ParentFolder is the top-level folder for this scenario's figures.
	ParentFolder string `json:"parentFolder" yaml:"parentFolder"`
}
