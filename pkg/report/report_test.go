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
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/header"
	"github.com/majoplot/majoplot/pkg/label"
	"github.com/majoplot/majoplot/pkg/preprocess"
	"github.com/majoplot/majoplot/pkg/scenario"
	"github.com/majoplot/majoplot/pkg/scenario/rt"
)

var columns = []string{
	rt.HeaderTemperature,
	rt.HeaderField,
	"Bridge 1 Resistance (Ohms)",
	"Bridge 1 Excitation (uA)",
	"Bridge 2 Resistance (Ohms)",
	"Bridge 2 Excitation (uA)",
	"Bridge 3 Resistance (Ohms)",
	"Bridge 3 Excitation (uA)",
}

func newRaw(id, sample1 string, rows ...data.Row) *data.RawData {
	l := label.NewSet()
	l.Set(data.LabelInstrument, label.String("PPMS"))
	l.Set(data.LabelRawData, label.String(id))
	l.Set(data.LabelDate, label.String("2024-10-15"))
	for i, s := range []string{sample1, "S2", "S3"} {
		l.Set(data.SampleNameLabel(i+1), label.String(s))
		l.Set(data.SampleUnitsLabel(i+1), label.String("Ohm"))
	}
	return data.NewRawData(columns, rows, l)
}

func run(t *testing.T, raws ...*data.RawData) (scenario.Scenario, *preprocess.Result) {
	t.Helper()
	sc := rt.New()
	res, err := preprocess.NewRunner(sc, preprocess.WithConcurrency(1)).Run(context.Background(), raws)
	require.NoError(t, err)
	return sc, res
}

func TestNew(t *testing.T) {
	nan := math.NaN()
	raw := newRaw("run-01", "film",
		data.Row{300, 100, 1.5, 10, nan, nan, nan, nan},
		data.Row{nan, 100, 1.4, 10, nan, nan, nan, nan},
		data.Row{298, 500, 1.3, 10, nan, nan, 2.0, 5},
	)
	sc, res := run(t, raw, newRaw("run-02", "other"))

	rep, err := New(sc, res, "v1.0.0")
	require.NoError(t, err)

	assert.Equal(t, header.KindPreprocessResult, rep.Kind)
	assert.Equal(t, "v1.0.0", rep.Metadata[header.MetadataVersion])
	assert.Equal(t, res.ID, rep.RunID)
	assert.Equal(t, 2, rep.Inputs)
	assert.Equal(t, 1, rep.Succeeded)
	require.Len(t, rep.Failures, 1)
	assert.Equal(t, apperrors.ErrCodePrecondition, rep.Failures[0].Code)

	// 100 Oe bridge 1, 500 Oe bridge 1, 500 Oe bridge 3
	require.Len(t, rep.Datasets, 3)
	assert.Equal(t, "100 Oe", rep.Datasets[0].Name)
	assert.Equal(t, []string{rt.LabelField}, rep.Datasets[0].Summary)
	assert.True(t, data.IsNull(rep.Datasets[0].Points[1][0]), "missing temperature kept as null")
	assert.Equal(t, "500 Oe", rep.Datasets[2].Name)

	require.Len(t, rep.Figures, 2)
	assert.Equal(t, "RT/2024-10-15/film", rep.Figures[0].Folder)
	assert.Equal(t, "run-01 Bridge 1 film", rep.Figures[0].Spec.Name)
	assert.Nil(t, rep.Figures[0].MultiAxes)
	require.Len(t, rep.Figures[0].Axes, 1)
	assert.Equal(t, []int{0, 1}, rep.Figures[0].Axes[0].Datasets)
	assert.Equal(t, rt.HeaderTemperature, rep.Figures[0].Axes[0].Spec.XAxisTitle)
	assert.Equal(t, "run-01 Bridge 3 S3", rep.Figures[1].Spec.Name)
	assert.Equal(t, []int{2}, rep.Figures[1].Axes[0].Datasets)
}

func TestNew_InfiniteReadingIsolated(t *testing.T) {
	nan := math.NaN()
	good := newRaw("run-01", "film", data.Row{300, 100, 1.5, 10, nan, nan, nan, nan})
	bad := newRaw("run-02", "film", data.Row{300, 100, math.Inf(1), 10, nan, nan, nan, nan})
	sc, res := run(t, good, bad)

	rep, err := New(sc, res, "")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Succeeded)
	require.Len(t, rep.Failures, 1)
	assert.Equal(t, "run-02", rep.Failures[0].RawData)
	assert.Equal(t, apperrors.ErrCodePrecondition, rep.Failures[0].Code)

	_, err = json.Marshal(rep)
	assert.NoError(t, err)
}

func TestReport_TableRows(t *testing.T) {
	raw := newRaw("run-01", "film", data.Row{300, 100, 1.5, 10, 0, 10, 0, 10})
	sc, res := run(t, raw, newRaw("run-02", "other"))

	rep, err := New(sc, res, "")
	require.NoError(t, err)
	assert.NotContains(t, rep.Metadata, header.MetadataVersion)

	assert.Equal(t, []string{"DATASET", "POINTS", "STATUS"}, rep.TableHeader())
	rows := rep.TableRows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"run-01 Bridge 1 film 100 Oe", "1", statusOK}, rows[0])
	assert.Equal(t, "run-02", rows[1][0])
	assert.Contains(t, rows[1][2], string(apperrors.ErrCodePrecondition))
}

func TestFolderFor(t *testing.T) {
	labels := label.NewSet()
	labels.Set("date", label.String("2024-10-15"))
	labels.Set("sample_name", label.String("film"))

	tests := []struct {
		name   string
		layout scenario.Layout
		want   string
	}{
		{"parent only", scenario.Layout{ParentFolder: "RT"}, "RT"},
		{
			"projected pair",
			scenario.Layout{ParentFolder: "RT", ProjectToChildFolder: map[string]string{"date": "sample_name"}},
			"RT/2024-10-15/film",
		},
		{
			"absent labels skipped",
			scenario.Layout{ParentFolder: "RT", ProjectToChildFolder: map[string]string{"date": "bridge"}},
			"RT/2024-10-15",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, folderFor(tt.layout, labels))
		})
	}
}
