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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/majoplot/majoplot/pkg/report"
	"github.com/majoplot/majoplot/pkg/scenario"
)

func scenariosCmd() *cli.Command {
	return &cli.Command{
		Name:  "scenarios",
		Usage: "List registered scenarios and their grouping layout",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			list, err := report.NewScenarioList(scenario.Global(), version)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, outFormat, list)
		},
	}
}
