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

// Package scenario defines the pluggable preprocessing scenario contract and
// the static registry the host uses to select one by name.
//
// # Core Types
//
// Scenario: one measurement scenario, implemented as a unit of four operations
// plus its grouping layout:
//
//	type Scenario interface {
//	    Name() string
//	    Layout() Layout
//	    Preprocess(ctx context.Context, raw *data.RawData) ([]*data.Dataset, error)
//	    AxesSpec(axesLabels *label.Set, pool []*data.Dataset) plotspec.AxesSpec
//	    FigureSpec(figureLabels *label.Set, axes []*plotspec.Axes) plotspec.FigureSpec
//	    MultiAxesSpec(axes []*plotspec.Axes) (*plotspec.MultiAxesSpec, error)
//	}
//
// Factory: function that creates a Scenario instance.
//
// # Registration Pattern
//
// Scenarios self-register in their package init() functions:
//
//	package rt
//
//	func init() {
//	    scenario.MustRegister(Name, func() scenario.Scenario {
//	        return New()
//	    })
//	}
//
// The host links the scenario packages it supports with blank imports and looks
// them up by name:
//
//	s, err := scenario.Get("rt")
//
// MustRegister panics on duplicate registration, so configuration mistakes
// surface at start-up.
//
// # Testing
//
// Create isolated registries for testing:
//
//	reg := scenario.NewRegistry()
//	reg.MustRegister("fake", func() scenario.Scenario { return &fake{} })
package scenario
