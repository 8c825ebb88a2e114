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

// Columns holds the resolved column indexes read for one bridge.
type Columns struct {
	Temperature int
	Resistance  int
	Current     int
}

// ChannelPoints is the extraction result for one bridge in one stage.
type ChannelPoints struct {
	Channel int
	// Points holds (temperature, resistance) pairs in acquisition order.
	Points [][2]float64
	// Currents holds the excitation current of each retained sample.
	Currents []float64
}

// Empty reports whether every sample was discarded.
func (c ChannelPoints) Empty() bool {
	return len(c.Points) == 0
}

// Extract reads one bridge from a stage, discarding samples whose resistance
// is null or zero. Nothing is interpolated.
func Extract(stage Stage, channel int, cols Columns) ChannelPoints {
	out := ChannelPoints{Channel: channel}
	for _, row := range stage.Samples {
		r := row[cols.Resistance]
		if !validResistance(r) {
			continue
		}
		out.Points = append(out.Points, [2]float64{row[cols.Temperature], r})
		out.Currents = append(out.Currents, row[cols.Current])
	}
	return out
}

func validResistance(r float64) bool {
	return !data.IsNull(r) && r != 0
}

// CheckFinite rejects retained points holding an infinite temperature or
// resistance. Missing temperatures are allowed.
func CheckFinite(points ChannelPoints) error {
	for i, p := range points.Points {
		if math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
			return apperrors.NewWithContext(apperrors.ErrCodePrecondition,
				"reading is not finite", map[string]any{
					"bridge":      points.Channel,
					"point":       i,
					"temperature": p[0],
					"resistance":  p[1],
				})
		}
	}
	return nil
}
