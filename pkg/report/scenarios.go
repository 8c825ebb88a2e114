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
	"strconv"

	"github.com/majoplot/majoplot/pkg/header"
	"github.com/majoplot/majoplot/pkg/scenario"
)

// ScenarioList describes every scenario in a registry.
type ScenarioList struct {
	header.Header `json:",inline" yaml:",inline"`

	Scenarios []ScenarioInfo `json:"scenarios" yaml:"scenarios"`
}

// ScenarioInfo describes one registered scenario.
type ScenarioInfo struct {
	Name   string          `json:"name" yaml:"name"`
	Layout scenario.Layout `json:"layout" yaml:"layout"`
}

// NewScenarioList lists reg in name order.
func NewScenarioList(reg *scenario.Registry, version string) (*ScenarioList, error) {
	l := &ScenarioList{}
	l.Init(header.KindScenarioList, version)
	for _, n := range reg.Names() {
		sc, err := reg.Get(n)
		if err != nil {
			return nil, err
		}
		l.Scenarios = append(l.Scenarios, ScenarioInfo{Name: n, Layout: sc.Layout()})
	}
	return l, nil
}

// TableHeader implements serializer.Tabular.
func (l *ScenarioList) TableHeader() []string {
	return []string{"NAME", "FOLDER", "MAX AXES"}
}

// TableRows implements serializer.Tabular.
func (l *ScenarioList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Scenarios))
	for _, s := range l.Scenarios {
		maxAxes := "unlimited"
		if s.Layout.MaxAxesInOneFigure > 0 {
			maxAxes = strconv.Itoa(s.Layout.MaxAxesInOneFigure)
		}
		rows = append(rows, []string{s.Name, s.Layout.ParentFolder, maxAxes})
	}
	return rows
}
