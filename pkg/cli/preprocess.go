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
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/label"
	"github.com/majoplot/majoplot/pkg/ppms"
	"github.com/majoplot/majoplot/pkg/preprocess"
	"github.com/majoplot/majoplot/pkg/report"
	"github.com/majoplot/majoplot/pkg/scenario"
	"github.com/majoplot/majoplot/pkg/serializer"
)

func preprocessCmd() *cli.Command {
	return &cli.Command{
		Name:                  "preprocess",
		EnableShellCompletion: true,
		Usage:                 "Run a scenario over raw-data files and emit grouped datasets",
		ArgsUsage:             "[FILE...]",
		Description: `Loads each raw-data file, runs the selected scenario on it, and writes one
document holding every produced dataset, the inputs that failed, and the
figures the datasets are grouped into.

# Inputs

  .dat               PPMS resistivity log
  .json, .yaml, .yml RawData document (headers, points, labels)

Inputs are processed independently: a file that fails is reported under
"failures" and the others still produce datasets. The command fails only
when every input fails.

# Examples

Preprocess two PPMS logs with the RT scenario:
  majoplot preprocess --scenario rt --input run-01.dat --input run-02.dat

Write JSON to a file and dump run metrics:
  majoplot preprocess -s rt -i run-01.dat -t json -o result.json --metrics-file run.prom`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "scenario",
				Aliases: []string{"s"},
				Value:   "rt",
				Usage: fmt.Sprintf("Scenario to run (registered: %s)",
					strings.Join(scenario.Names(), ", ")),
			},
			&cli.StringSliceFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Raw-data file to preprocess (can be repeated; positional arguments are also accepted)",
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"c"},
				Usage:   "Maximum inputs preprocessed in parallel (default: number of CPUs)",
				Sources: cli.EnvVars("MAJOPLOT_CONCURRENCY"),
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics in text format to this file after the run",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			sc, err := scenario.Get(cmd.String("scenario"))
			if err != nil {
				return err
			}

			paths := inputPaths(cmd)
			if len(paths) == 0 {
				return apperrors.New(apperrors.ErrCodeInvalidRequest, "at least one input file is required")
			}

			raws := make([]*data.RawData, 0, len(paths))
			for _, p := range paths {
				slog.Debug("loading raw data", "path", p)
				raw, loadErr := loadRawData(p)
				if loadErr != nil {
					return fmt.Errorf("failed to load raw data from %q: %w", p, loadErr)
				}
				raws = append(raws, raw)
			}

			runner := preprocess.NewRunner(sc, preprocess.WithConcurrency(cmd.Int("concurrency")))
			res, err := runner.Run(ctx, raws)
			if err != nil {
				return err
			}

			rep, err := report.New(sc, res, version)
			if err != nil {
				return err
			}

			if err := writeDocument(ctx, cmd, outFormat, rep); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}

			if metricsFile := cmd.String("metrics-file"); metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, prometheus.DefaultGatherer); err != nil {
					return fmt.Errorf("failed to write metrics to %q: %w", metricsFile, err)
				}
			}

			if res.Succeeded() == 0 {
				return apperrors.NewWithContext(apperrors.ErrCodePrecondition,
					fmt.Sprintf("all %d inputs failed", res.Inputs),
					map[string]any{"scenario": sc.Name()})
			}
			return nil
		},
	}
}

// inputPaths merges --input values with positional arguments.
func inputPaths(cmd *cli.Command) []string {
	var out []string
	for _, p := range append(cmd.StringSlice("input"), cmd.Args().Slice()...) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// loadRawData reads one input file, choosing the loader by extension.
// Serialized records without a raw_data label are named after the file.
func loadRawData(path string) (*data.RawData, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".dat":
		return ppms.Load(path)
	case ".json", ".yaml", ".yml":
		raw, err := serializer.FromFile[data.RawData](path)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "malformed raw-data document", err)
		}
		if raw.Labels == nil {
			raw.Labels = label.NewSet()
		}
		if !raw.Labels.Has(data.LabelRawData) {
			raw.Labels.Set(data.LabelRawData, label.String(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))))
		}
		return raw, nil
	default:
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported input file type %q", ext),
			map[string]any{"path": path})
	}
}
