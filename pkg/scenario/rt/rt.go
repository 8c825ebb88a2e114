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
	"context"
	"fmt"
	"log/slog"

	"github.com/majoplot/majoplot/pkg/data"
	"github.com/majoplot/majoplot/pkg/scenario"
)

// Name is the registry name of the scenario.
const Name = "rt"

// Scenario is the resistance-versus-temperature scenario.
type Scenario struct {
	cfg *Config
}

var _ scenario.Scenario = (*Scenario)(nil)

// New creates the scenario with opts applied to the PPMS defaults.
func New(opts ...Option) *Scenario {
	return &Scenario{cfg: NewConfig(opts...)}
}

// Name implements scenario.Scenario.
func (s *Scenario) Name() string {
	return Name
}

// Config returns the scenario configuration.
func (s *Scenario) Config() *Config {
	return s.cfg
}

// channelColumns pairs a bridge with its resolved column indexes.
type channelColumns struct {
	channel          int
	resistanceHeader string
	cols             Columns
}

// Preprocess implements scenario.Scenario. Datasets are ordered by stage, then
// by bridge. Any error aborts the whole record.
func (s *Scenario) Preprocess(ctx context.Context, raw *data.RawData) ([]*data.Dataset, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	fieldCol, err := raw.Column(s.cfg.FieldHeader())
	if err != nil {
		return nil, err
	}
	channels, err := s.resolveChannels(raw)
	if err != nil {
		return nil, err
	}

	stages, err := Segment(raw.Points, fieldCol)
	if err != nil {
		return nil, fmt.Errorf("failed to segment %q: %w", raw.ID(), err)
	}
	stagesTotal.Add(float64(len(stages)))
	slog.Debug("segmented raw data",
		"raw_data", raw.ID(),
		"samples", len(raw.Points),
		"stages", len(stages))

	var datasets []*data.Dataset
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, ch := range channels {
			points := Extract(stage, ch.channel, ch.cols)
			if points.Empty() {
				channelsDropped.Inc()
				slog.Debug("dropping bridge without valid resistance",
					"raw_data", raw.ID(),
					"field", stage.Field,
					"bridge", ch.channel,
					"samples", len(stage.Samples))
				continue
			}

			if err := CheckFinite(points); err != nil {
				return nil, fmt.Errorf("raw data %q, stage %d Oe: %w", raw.ID(), stage.Field, err)
			}

			ds, err := s.buildDataset(raw, stage.Field, ch.resistanceHeader, points)
			if err != nil {
				return nil, fmt.Errorf("raw data %q, stage %d Oe, bridge %d: %w",
					raw.ID(), stage.Field, ch.channel, err)
			}
			datasets = append(datasets, ds)
		}
	}
	datasetsTotal.Add(float64(len(datasets)))
	return datasets, nil
}

func (s *Scenario) resolveChannels(raw *data.RawData) ([]channelColumns, error) {
	tempCol, err := raw.Column(s.cfg.TemperatureHeader())
	if err != nil {
		return nil, err
	}

	table := s.cfg.Channels()
	out := make([]channelColumns, 0, len(table.Indexes()))
	for _, i := range table.Indexes() {
		cc, _ := table.Columns(i)
		rCol, err := raw.Column(cc.Resistance)
		if err != nil {
			return nil, err
		}
		iCol, err := raw.Column(cc.Current)
		if err != nil {
			return nil, err
		}
		out = append(out, channelColumns{
			channel:          i,
			resistanceHeader: cc.Resistance,
			cols:             Columns{Temperature: tempCol, Resistance: rCol, Current: iCol},
		})
	}
	return out, nil
}

func (s *Scenario) buildDataset(raw *data.RawData, field int, resistanceHeader string, points ChannelPoints) (*data.Dataset, error) {
	current, err := SummarizeCurrent(points.Currents, s.cfg.StableRatio())
	if err != nil {
		return nil, err
	}

	labels, err := AssembleLabels(raw.Labels, points.Channel, field, current)
	if err != nil {
		return nil, err
	}

	outliers := s.cfg.IgnoreOutliers()
	return &data.Dataset{
		Headers:        [2]string{s.cfg.TemperatureHeader(), resistanceHeader},
		Points:         points.Points,
		Labels:         labels,
		IgnoreOutliers: &outliers,
	}, nil
}
