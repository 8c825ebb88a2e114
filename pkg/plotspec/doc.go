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

// Package plotspec defines the visual specifications a scenario hands to the
// rendering collaborator, and the grouping of datasets into axes and figures.
//
// Nothing here draws. Specs are plain values: a renderer reads AxesSpec for
// titles, ticks, grid and legend, and FigureSpec for the figure name, size and
// the style cycles applied to successive datasets.
//
// Grouping follows a scenario's Layout: datasets sharing the rendered values of
// the axes label names land on one Axes, and axes sharing the figure label
// names land on one Figure, split so that no figure exceeds its axes limit.
package plotspec
