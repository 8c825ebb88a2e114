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
	"math"

	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
)

// Stage is a contiguous run of samples sharing one rounded field value.
type Stage struct {
	Field   int
	Samples []data.Row
}

// Segment splits points into stages by the rounded value of column fieldCol.
// Stages are run-length groups: a value seen again after a change opens a
// new stage. There is no hysteresis, so a field dithering across a rounding
// boundary yields one stage per crossing.
func Segment(points []data.Row, fieldCol int) ([]Stage, error) {
	if len(points) == 0 {
		return nil, apperrors.New(apperrors.ErrCodePrecondition, "raw sample list is empty")
	}

	var stages []Stage
	for i, row := range points {
		if fieldCol < 0 || fieldCol >= len(row) {
			return nil, apperrors.NewWithContext(apperrors.ErrCodePrecondition,
				"field column out of range", map[string]any{"row": i, "column": fieldCol})
		}
		id, err := stageID(row[fieldCol])
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodePrecondition,
				"invalid field value", err, map[string]any{"row": i})
		}

		if n := len(stages); n > 0 && stages[n-1].Field == id {
			stages[n-1].Samples = append(stages[n-1].Samples, row)
			continue
		}
		stages = append(stages, Stage{Field: id, Samples: []data.Row{row}})
	}
	return stages, nil
}

// stageID rounds half to even, matching the instrument software.
func stageID(field float64) (int, error) {
	if math.IsNaN(field) || math.IsInf(field, 0) {
		return 0, apperrors.NewWithContext(apperrors.ErrCodePrecondition,
			"field value is not finite", map[string]any{"field": field})
	}
	return int(math.RoundToEven(field)), nil
}
