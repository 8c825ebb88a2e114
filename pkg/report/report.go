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

package report

import (
	"fmt"
	"path"
	"sort"
	"strconv"

	"github.com/majoplot/majoplot/pkg/data"
	"github.com/majoplot/majoplot/pkg/header"
	"github.com/majoplot/majoplot/pkg/label"
	"github.com/majoplot/majoplot/pkg/plotspec"
	"github.com/majoplot/majoplot/pkg/preprocess"
	"github.com/majoplot/majoplot/pkg/scenario"
)

const statusOK = "ok"

// Report is the document describing one preprocessing run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	RunID     string               `json:"runId" yaml:"runId"`
	Scenario  string               `json:"scenario" yaml:"scenario"`
	Inputs    int                  `json:"inputs" yaml:"inputs"`
	Succeeded int                  `json:"succeeded" yaml:"succeeded"`
	Datasets  []DatasetView        `json:"datasets" yaml:"datasets"`
	Failures  []preprocess.Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
	Figures   []FigureView         `json:"figures" yaml:"figures"`
}

// DatasetView is a dataset as serialized in a Report. Points are written as
// rows so missing temperatures encode as null.
type DatasetView struct {
	Name           string                  `json:"name" yaml:"name"`
	Headers        [2]string               `json:"headers" yaml:"headers"`
	Points         []data.Row              `json:"points" yaml:"points"`
	Labels         *label.Set              `json:"labels" yaml:"labels"`
	Summary        []string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	IgnoreOutliers *data.IgnoreOutlierSpec `json:"ignoreOutliers,omitempty" yaml:"ignoreOutliers,omitempty"`

	title string
}

// FigureView pairs a figure's spec with its axes. Datasets are referenced by
// index into Report.Datasets.
type FigureView struct {
	Folder    string                  `json:"folder" yaml:"folder"`
	Spec      plotspec.FigureSpec     `json:"spec" yaml:"spec"`
	MultiAxes *plotspec.MultiAxesSpec `json:"multiAxes,omitempty" yaml:"multiAxes,omitempty"`
	Labels    *label.Set              `json:"labels" yaml:"labels"`
	Axes      []AxesView              `json:"axes" yaml:"axes"`
}

// AxesView is one axes of a FigureView.
type AxesView struct {
	Spec     plotspec.AxesSpec `json:"spec" yaml:"spec"`
	Labels   *label.Set        `json:"labels" yaml:"labels"`
	Datasets []int             `json:"datasets" yaml:"datasets"`
}

// New groups the run's datasets into figures using the scenario layout.
// version is recorded in the header metadata when non-empty.
func New(sc scenario.Scenario, res *preprocess.Result, version string) (*Report, error) {
	layout := sc.Layout()

	r := &Report{
		RunID:     res.ID,
		Scenario:  res.Scenario,
		Inputs:    res.Inputs,
		Succeeded: res.Succeeded(),
		Datasets:  make([]DatasetView, 0, len(res.Datasets)),
		Failures:  res.Failures,
	}
	r.Init(header.KindPreprocessResult, version)

	index := make(map[*data.Dataset]int, len(res.Datasets))
	for i, ds := range res.Datasets {
		index[ds] = i
		r.Datasets = append(r.Datasets, newDatasetView(ds, layout))
	}

	axes := plotspec.GroupAxes(res.Datasets, layout.AxesLabelNames)
	for _, fig := range plotspec.GroupFigures(axes, layout.FigureLabelNames, layout.MaxAxesInOneFigure) {
		multi, err := sc.MultiAxesSpec(fig.Axes)
		if err != nil {
			return nil, fmt.Errorf("failed to arrange figure %q: %w",
				fig.Labels.BriefSummary(layout.FigureSummaryLabelNames...), err)
		}
		fv := FigureView{
			Folder:    folderFor(layout, fig.Labels),
			Spec:      sc.FigureSpec(fig.Labels, fig.Axes),
			MultiAxes: multi,
			Labels:    fig.Labels,
			Axes:      make([]AxesView, 0, len(fig.Axes)),
		}
		for _, ax := range fig.Axes {
			av := AxesView{
				Spec:     sc.AxesSpec(ax.Labels, ax.Datasets),
				Labels:   ax.Labels,
				Datasets: make([]int, 0, len(ax.Datasets)),
			}
			for _, ds := range ax.Datasets {
				av.Datasets = append(av.Datasets, index[ds])
			}
			fv.Axes = append(fv.Axes, av)
		}
		r.Figures = append(r.Figures, fv)
	}
	return r, nil
}

func newDatasetView(ds *data.Dataset, layout scenario.Layout) DatasetView {
	points := make([]data.Row, len(ds.Points))
	for i, p := range ds.Points {
		points[i] = data.Row{p[0], p[1]}
	}
	titleNames := append(append([]string(nil), layout.FigureSummaryLabelNames...), layout.DataSummaryLabelNames...)
	return DatasetView{
		title:          ds.Labels.BriefSummary(titleNames...),
		Name:           ds.Labels.BriefSummary(layout.DataSummaryLabelNames...),
		Headers:        ds.Headers,
		Points:         points,
		Labels:         ds.Labels,
		Summary:        ds.Labels.SummaryNames(),
		IgnoreOutliers: ds.IgnoreOutliers,
	}
}

// folderFor builds the relative output folder of a figure: the scenario's
// parent folder, then each projected parent/child label pair in name order.
func folderFor(layout scenario.Layout, labels *label.Set) string {
	parts := []string{layout.ParentFolder}
	parents := make([]string, 0, len(layout.ProjectToChildFolder))
	for p := range layout.ProjectToChildFolder {
		parents = append(parents, p)
	}
	sort.Strings(parents)
	for _, p := range parents {
		for _, n := range []string{p, layout.ProjectToChildFolder[p]} {
			if v := labels.Render(n); v != "" {
				parts = append(parts, v)
			}
		}
	}
	return path.Join(parts...)
}

// TableHeader implements serializer.Tabular.
func (r *Report) TableHeader() []string {
	return []string{"DATASET", "POINTS", "STATUS"}
}

// TableRows implements serializer.Tabular: one row per dataset, then one per
// failed input.
func (r *Report) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Datasets)+len(r.Failures))
	for _, ds := range r.Datasets {
		rows = append(rows, []string{
			ds.title,
			strconv.Itoa(len(ds.Points)),
			statusOK,
		})
	}
	for _, f := range r.Failures {
		rows = append(rows, []string{
			f.RawData,
			"0",
			fmt.Sprintf("%s: %s", f.Code, f.Message),
		})
	}
	return rows
}
