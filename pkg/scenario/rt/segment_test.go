package rt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/majoplot/majoplot/pkg/errors"
)

func stageSizes(stages []Stage) (fields, sizes []int) {
	for _, s := range stages {
		fields = append(fields, s.Field)
		sizes = append(sizes, len(s.Samples))
	}
	return fields, sizes
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name       string
		fields     []float64
		wantFields []int
		wantSizes  []int
	}{
		{
			name:       "run then change",
			fields:     []float64{100, 100, 100, 200},
			wantFields: []int{100, 200},
			wantSizes:  []int{3, 1},
		},
		{
			name:       "revisit never merges",
			fields:     []float64{100, 200, 100},
			wantFields: []int{100, 200, 100},
			wantSizes:  []int{1, 1, 1},
		},
		{
			name:       "rounding groups noise",
			fields:     []float64{99.7, 100.2, 100.4, 199.9, 200.3},
			wantFields: []int{100, 200},
			wantSizes:  []int{3, 2},
		},
		{
			name:       "round half to even",
			fields:     []float64{100.5, 100, 101.5, 102},
			wantFields: []int{100, 102},
			wantSizes:  []int{2, 2},
		},
		{
			name:       "dither across boundary fragments",
			fields:     []float64{100.4, 100.6, 100.4, 100.6},
			wantFields: []int{100, 101, 100, 101},
			wantSizes:  []int{1, 1, 1, 1},
		},
		{
			name:       "negative fields",
			fields:     []float64{-500.2, -499.8, 0.3, -0.3},
			wantFields: []int{-500, 0},
			wantSizes:  []int{2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages, err := Segment(fieldRows(tt.fields...), 1)
			require.NoError(t, err)

			fields, sizes := stageSizes(stages)
			assert.Equal(t, tt.wantFields, fields)
			assert.Equal(t, tt.wantSizes, sizes)
		})
	}
}

func TestSegment_PreservesSampleOrder(t *testing.T) {
	rows := fieldRows(100, 100, 100)
	stages, err := Segment(rows, 1)
	require.NoError(t, err)
	require.Len(t, stages, 1)

	for i, r := range stages[0].Samples {
		assert.Equal(t, rows[i][0], r[0])
	}
}

func TestSegment_CountProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(60)
		fields := make([]float64, n)
		for i := range fields {
			fields[i] = float64(rng.Intn(4)*100) + rng.Float64()*0.8 - 0.4
		}

		stages, err := Segment(fieldRows(fields...), 1)
		require.NoError(t, err)

		total := 0
		for _, s := range stages {
			total += len(s.Samples)
		}
		assert.Equal(t, n, total, "samples must be conserved")

		transitions := 0
		for i := 1; i < n; i++ {
			prev, _ := stageID(fields[i-1])
			cur, _ := stageID(fields[i])
			if prev != cur {
				transitions++
			}
		}
		assert.Equal(t, transitions+1, len(stages))
	}
}

func TestSegment_Errors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "empty input",
			run: func() error {
				_, err := Segment(nil, 1)
				return err
			},
		},
		{
			name: "null field",
			run: func() error {
				_, err := Segment(fieldRows(100, nan), 1)
				return err
			},
		},
		{
			name: "column out of range",
			run: func() error {
				_, err := Segment(fieldRows(100), 42)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodePrecondition, apperrors.CodeOf(err))
		})
	}
}
