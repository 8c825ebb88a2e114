package rt

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/label"
	"github.com/majoplot/majoplot/pkg/plotspec"
	"github.com/majoplot/majoplot/pkg/scenario"
)

func TestPreprocess_OrderAndLabels(t *testing.T) {
	raw := newRaw(
		sample(300, 100.2, 1.0, 10.0, 2.0, 5.0, 3.0, 1.0),
		sample(299, 99.9, 1.1, 10.0, 2.1, 10.0, 3.1, 1.0),
		sample(298, 200.1, 1.2, 10.0, 2.2, 10.0, 3.2, 1.0),
	)

	got, err := New().Preprocess(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, got, 6)

	type key struct {
		field  string
		bridge string
	}
	var order []key
	for _, ds := range got {
		order = append(order, key{ds.Labels.Render(LabelField), ds.Labels.Render(LabelBridge)})
	}
	assert.Equal(t, []key{
		{"100 Oe", "Bridge 1"}, {"100 Oe", "Bridge 2"}, {"100 Oe", "Bridge 3"},
		{"200 Oe", "Bridge 1"}, {"200 Oe", "Bridge 2"}, {"200 Oe", "Bridge 3"},
	}, order)

	first := got[0]
	assert.Equal(t, [2]string{HeaderTemperature, "Bridge 1 Resistance (Ohms)"}, first.Headers)
	assert.Equal(t, [][2]float64{{300, 1.0}, {299, 1.1}}, first.Points)
	assert.Equal(t, "1.0e+01 μA", first.Labels.Render(LabelCurrentRange))
	require.NotNil(t, first.IgnoreOutliers)
	assert.Equal(t, data.IgnoreOutlierSpec{MinGapBase: 1e-4, MinGapMultiple: 10}, *first.IgnoreOutliers)

	assert.Equal(t, "5.0e+00~1.0e+01 μA", got[1].Labels.Render(LabelCurrentRange))
	assert.Equal(t, "S3", got[2].Labels.Render(LabelSampleName))
}

func TestPreprocess_DropsChannelWithoutResistance(t *testing.T) {
	raw := newRaw(
		sample(300, 100, 1.0, 10.0, nan, 10.0, 3.0, 1.0),
		sample(299, 100, 1.1, 10.0, 0, 10.0, 3.1, 1.0),
		sample(298, 200, 1.2, 10.0, 2.2, 10.0, 3.2, 1.0),
	)

	got, err := New().Preprocess(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, got, 5)

	for _, ds := range got {
		assert.False(t, ds.Empty())
		if ds.Labels.Render(LabelField) == "100 Oe" {
			assert.NotEqual(t, "Bridge 2", ds.Labels.Render(LabelBridge))
		}
		for _, p := range ds.Points {
			assert.False(t, data.IsNull(p[1]))
			assert.NotZero(t, p[1])
		}
	}
}

func TestPreprocess_RevisitedFieldStaysSeparate(t *testing.T) {
	raw := newRaw(fieldRows(100, 200, 100)...)

	got, err := New().Preprocess(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, got, 9)
	assert.Equal(t, "100 Oe", got[0].Labels.Render(LabelField))
	assert.Equal(t, "200 Oe", got[3].Labels.Render(LabelField))
	assert.Equal(t, "100 Oe", got[6].Labels.Render(LabelField))
}

func TestPreprocess_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  *data.RawData
		code apperrors.ErrorCode
	}{
		{
			name: "empty samples",
			raw:  newRaw(),
			code: apperrors.ErrCodePrecondition,
		},
		{
			name: "missing header",
			raw: data.NewRawData(testColumns[:6], []data.Row{
				{300, 100, 1, 10, 1, 10},
			}, testLabels()),
			code: apperrors.ErrCodePrecondition,
		},
		{
			name: "missing label",
			raw: data.NewRawData(testColumns, []data.Row{
				sample(300, 100, 1, 10, 1, 10, 1, 10),
			}, label.NewSet()),
			code: apperrors.ErrCodePrecondition,
		},
		{
			name: "zero max current with spread",
			raw:  newRaw(sample(300, 100, 1, -1, 1, 10, 1, 10), sample(299, 100, 1, 0, 1, 10, 1, 10)),
			code: apperrors.ErrCodeNumericDegenerate,
		},
		{
			name: "null current on retained sample",
			raw:  newRaw(sample(300, 100, 1, nan, 1, 10, 1, 10)),
			code: apperrors.ErrCodeNumericDegenerate,
		},
		{
			name: "infinite resistance",
			raw:  newRaw(sample(300, 100, math.Inf(1), 10, 1, 10, 1, 10)),
			code: apperrors.ErrCodePrecondition,
		},
		{
			name: "infinite temperature",
			raw:  newRaw(sample(math.Inf(-1), 100, 1, 10, 1, 10, 1, 10)),
			code: apperrors.ErrCodePrecondition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Preprocess(context.Background(), tt.raw)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.code, apperrors.CodeOf(err))
		})
	}
}

func TestPreprocess_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Preprocess(ctx, newRaw(fieldRows(100)...))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPreprocess_CustomChannels(t *testing.T) {
	ch, err := NewChannels(map[int]ChannelColumns{
		2: {Resistance: "Bridge 2 Resistance (Ohms)", Current: "Bridge 2 Excitation (uA)"},
	})
	require.NoError(t, err)

	got, err := New(WithChannels(ch)).Preprocess(context.Background(), newRaw(fieldRows(100, 100)...))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bridge 2", got[0].Labels.Render(LabelBridge))
}

func TestNewChannels_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cols map[int]ChannelColumns
	}{
		{"empty", nil},
		{"zero index", map[int]ChannelColumns{0: {Resistance: "r", Current: "i"}}},
		{"missing current", map[int]ChannelColumns{1: {Resistance: "r"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChannels(tt.cols)
			assert.Error(t, err)
		})
	}
}

func TestDefaultChannels(t *testing.T) {
	ch := DefaultChannels()
	assert.Equal(t, []int{1, 2, 3}, ch.Indexes())

	cc, ok := ch.Columns(3)
	require.True(t, ok)
	assert.Equal(t, "Bridge 3 Resistance (Ohms)", cc.Resistance)
	assert.Equal(t, "Bridge 3 Excitation (uA)", cc.Current)
}

func TestRegistered(t *testing.T) {
	s, err := scenario.Get(Name)
	require.NoError(t, err)
	assert.Equal(t, Name, s.Name())
}

func TestSpecs(t *testing.T) {
	s := New()

	layout := s.Layout()
	assert.Equal(t, []string{"H"}, layout.DataSummaryLabelNames)
	assert.Equal(t, []string{"date", "raw_data", "bridge", "sample_name"}, layout.AxesLabelNames)
	assert.Equal(t, []string{"raw_data", "bridge", "sample_name"}, layout.FigureSummaryLabelNames)
	assert.Equal(t, 1, layout.MaxAxesInOneFigure)
	assert.Equal(t, "RT", layout.ParentFolder)

	axes := s.AxesSpec(label.NewSet(), nil)
	assert.Equal(t, "Temperature (K)", axes.XAxisTitle)
	assert.Equal(t, "Resistance (Ohms)", axes.YAxisTitle)
	assert.Nil(t, axes.MajorGrid)
	require.NotNil(t, axes.Legend)
	assert.Equal(t, 5.0, axes.Legend.FontSize)

	datasets, err := s.Preprocess(context.Background(), newRaw(fieldRows(100, 200)...))
	require.NoError(t, err)
	ax := plotspec.GroupAxes(datasets, layout.AxesLabelNames)
	require.Len(t, ax, 3)
	assert.Len(t, ax[0].Datasets, 2)

	figs := plotspec.GroupFigures(ax, layout.FigureLabelNames, layout.MaxAxesInOneFigure)
	require.Len(t, figs, 3)

	fig := s.FigureSpec(figs[0].Labels, figs[0].Axes)
	assert.Equal(t, "run-01 Bridge 1 S1", fig.Name)
	assert.Equal(t, [2]float64{8, 6}, fig.FigSize)
	assert.Len(t, fig.LineColorCycle, 23)
	assert.Equal(t, "#515151", fig.LineColorCycle[0])
	assert.Equal(t, []string{"o"}, fig.LineMarkerCycle)

	multi, err := s.MultiAxesSpec(ax)
	assert.NoError(t, err)
	assert.Nil(t, multi)
}
