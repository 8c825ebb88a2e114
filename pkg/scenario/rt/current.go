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
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	apperrors "github.com/majoplot/majoplot/pkg/errors"
)

// SummarizeCurrent describes the excitation currents of one bridge in one stage.
//
// When (max-min)/max < stableRatio the mean is returned ("1.0e+01"); otherwise
// the range is ("5.0e+00~1.0e+01"). Values use one fractional digit in
// scientific notation.
//
// An all-zero input is stable at zero. A zero maximum with a non-zero spread,
// or any NaN or infinite current, has no defined ratio and is rejected.
func SummarizeCurrent(currents []float64, stableRatio float64) (string, error) {
	if len(currents) == 0 {
		return "", apperrors.New(apperrors.ErrCodeEmptyResult, "no excitation currents to summarize")
	}
	if floats.HasNaN(currents) {
		return "", apperrors.New(apperrors.ErrCodeNumericDegenerate, "excitation current contains null values")
	}
	for _, c := range currents {
		if math.IsInf(c, 0) {
			return "", apperrors.NewWithContext(apperrors.ErrCodeNumericDegenerate,
				"excitation current is infinite", map[string]any{"current": c})
		}
	}

	lo, hi := floats.Min(currents), floats.Max(currents)
	if hi == 0 {
		if lo == 0 {
			return formatCurrent(0), nil
		}
		return "", apperrors.NewWithContext(apperrors.ErrCodeNumericDegenerate,
			"current spread undefined for zero maximum", map[string]any{
				"min": lo,
				"max": hi,
			})
	}

	if (hi-lo)/hi < stableRatio {
		return formatCurrent(stat.Mean(currents, nil)), nil
	}
	return formatCurrent(lo) + "~" + formatCurrent(hi), nil
}

func formatCurrent(v float64) string {
	return strconv.FormatFloat(v, 'e', 1, 64)
}
