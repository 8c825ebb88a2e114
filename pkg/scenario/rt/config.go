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
	"fmt"
	"sort"

	"github.com/majoplot/majoplot/pkg/data"
)

// Column titles written by the PPMS resistivity option.
const (
	HeaderTemperature = "Temperature (K)"
	HeaderField       = "Magnetic Field (Oe)"
	HeaderResistance  = "Resistance (Ohms)"
)

// DefaultStableRatio is the relative current spread below which a bridge is
// reported as current-stable.
const DefaultStableRatio = 0.03

// ChannelColumns names the raw columns read for one bridge.
type ChannelColumns struct {
	Resistance string `json:"resistance" yaml:"resistance"`
	Current    string `json:"current" yaml:"current"`
}

// Channels is an immutable bridge → columns table.
type Channels struct {
	cols    map[int]ChannelColumns
	indexes []int
}

// NewChannels validates and freezes a bridge table.
func NewChannels(cols map[int]ChannelColumns) (Channels, error) {
	if len(cols) == 0 {
		return Channels{}, fmt.Errorf("at least one channel is required")
	}
	c := Channels{
		cols:    make(map[int]ChannelColumns, len(cols)),
		indexes: make([]int, 0, len(cols)),
	}
	for i, cc := range cols {
		if i < 1 {
			return Channels{}, fmt.Errorf("channel index must be positive, got %d", i)
		}
		if cc.Resistance == "" || cc.Current == "" {
			return Channels{}, fmt.Errorf("channel %d: resistance and current headers are required", i)
		}
		c.cols[i] = cc
		c.indexes = append(c.indexes, i)
	}
	sort.Ints(c.indexes)
	return c, nil
}

// DefaultChannels returns the three PPMS resistivity bridges.
func DefaultChannels() Channels {
	cols := make(map[int]ChannelColumns, 3)
	for i := 1; i <= 3; i++ {
		cols[i] = ChannelColumns{
			Resistance: fmt.Sprintf("Bridge %d Resistance (Ohms)", i),
			Current:    fmt.Sprintf("Bridge %d Excitation (uA)", i),
		}
	}
	c, _ := NewChannels(cols)
	return c
}

// Indexes returns the bridge indexes in ascending order.
func (c Channels) Indexes() []int {
	return append([]int(nil), c.indexes...)
}

// Columns returns the columns configured for bridge i.
func (c Channels) Columns(i int) (ChannelColumns, bool) {
	cc, ok := c.cols[i]
	return cc, ok
}

// Config provides immutable configuration for the scenario.
// Use the With* options to build one.
type Config struct {
	temperatureHeader string
	fieldHeader       string
	channels          Channels
	stableRatio       float64
	ignoreOutliers    data.IgnoreOutlierSpec
}

// TemperatureHeader returns the temperature column title.
func (c *Config) TemperatureHeader() string {
	return c.temperatureHeader
}

// FieldHeader returns the magnetic field column title.
func (c *Config) FieldHeader() string {
	return c.fieldHeader
}

// Channels returns the bridge table.
func (c *Config) Channels() Channels {
	return c.channels
}

// StableRatio returns the current-stable threshold.
func (c *Config) StableRatio() float64 {
	return c.stableRatio
}

// IgnoreOutliers returns the outlier hint attached to every dataset.
func (c *Config) IgnoreOutliers() data.IgnoreOutlierSpec {
	return c.ignoreOutliers
}

// Option is a functional option for configuring Config instances.
type Option func(*Config)

// WithTemperatureHeader overrides the temperature column title.
func WithTemperatureHeader(h string) Option {
	return func(c *Config) {
		c.temperatureHeader = h
	}
}

// WithFieldHeader overrides the magnetic field column title.
func WithFieldHeader(h string) Option {
	return func(c *Config) {
		c.fieldHeader = h
	}
}

// WithChannels overrides the bridge table.
func WithChannels(ch Channels) Option {
	return func(c *Config) {
		c.channels = ch
	}
}

// WithStableRatio overrides the current-stable threshold.
func WithStableRatio(r float64) Option {
	return func(c *Config) {
		c.stableRatio = r
	}
}

// WithIgnoreOutliers overrides the outlier hint.
func WithIgnoreOutliers(spec data.IgnoreOutlierSpec) Option {
	return func(c *Config) {
		c.ignoreOutliers = spec
	}
}

// NewConfig returns the PPMS defaults with opts applied.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		temperatureHeader: HeaderTemperature,
		fieldHeader:       HeaderField,
		channels:          DefaultChannels(),
		stableRatio:       DefaultStableRatio,
		ignoreOutliers: data.IgnoreOutlierSpec{
			MinGapBase:     1e-4,
			MinGapMultiple: 10,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
