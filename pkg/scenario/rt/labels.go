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
	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/label"
)

// Dataset label names.
const (
	LabelBridge       = "bridge"
	LabelSampleName   = "sample_name"
	LabelSampleUnits  = "sample_units"
	LabelField        = "H"
	LabelCurrentRange = "I_range"
)

// Label units.
const (
	UnitBridge  = "Bridge"
	UnitField   = "Oe"
	UnitCurrent = "μA"
)

// AssembleLabels builds the labels of one dataset. The order of the returned
// set is part of its contract.
func AssembleLabels(raw *label.Set, channel, field int, current string) (*label.Set, error) {
	get := func(name string) (label.Value, error) {
		v, ok := raw.Get(name)
		if !ok {
			return label.Value{}, apperrors.NewWithContext(apperrors.ErrCodePrecondition,
				"missing raw label", map[string]any{"label": name, "channel": channel})
		}
		return v, nil
	}

	labels := label.NewSet()
	for _, name := range []string{data.LabelInstrument, data.LabelRawData, data.LabelDate} {
		v, err := get(name)
		if err != nil {
			return nil, err
		}
		labels.Set(name, v)
	}

	labels.Set(LabelBridge, label.Prefixed(channel, UnitBridge))

	name, err := get(data.SampleNameLabel(channel))
	if err != nil {
		return nil, err
	}
	units, err := get(data.SampleUnitsLabel(channel))
	if err != nil {
		return nil, err
	}
	labels.Set(LabelSampleName, name)
	labels.Set(LabelSampleUnits, units)

	labels.Set(LabelField, label.WithUnit(field, UnitField))
	labels.Set(LabelCurrentRange, label.WithUnit(current, UnitCurrent))
	labels.SetSummaryNames(LabelField)
	return labels, nil
}
