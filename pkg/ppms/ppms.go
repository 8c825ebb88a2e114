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

package ppms

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/label"
)

// Instrument is the instrument label of every PPMS record.
const Instrument = "PPMS"

// LabelApp holds the measurement option that wrote the file.
const LabelApp = "app"

// Channels is the number of sample slots described in a resistivity header.
const Channels = 3

const (
	sectionHeader = "[Header]"
	sectionData   = "[Data]"
	commentColumn = "Comment"
)

// Load reads a .dat file. The raw_data label is the file name without extension.
func Load(path string) (*data.RawData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	raw, err := Parse(f, id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return raw, nil
}

// Parse reads a .dat stream and labels the record with id.
func Parse(r io.Reader, id string) (*data.RawData, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = ';'
	cr.LazyQuotes = true

	labels := label.NewSet()
	labels.Set(data.LabelInstrument, label.String(Instrument))
	labels.Set(data.LabelRawData, label.String(id))

	var (
		section string
		columns []string
		points  []data.Row
		info    = make(map[string]string)
		date    string
		app     string
	)

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "malformed PPMS file", err)
		}
		if len(rec) == 1 && (rec[0] == sectionHeader || rec[0] == sectionData) {
			section = rec[0]
			continue
		}

		switch section {
		case sectionHeader:
			switch strings.ToUpper(rec[0]) {
			case "INFO":
				if len(rec) >= 3 {
					info[strings.ToUpper(strings.TrimSpace(rec[2]))] = strings.TrimSpace(rec[1])
				}
			case "BYAPP":
				if len(rec) >= 2 {
					app = strings.TrimSpace(rec[1])
				}
			case "FILEOPENTIME":
				if len(rec) >= 3 {
					date = normalizeDate(strings.TrimSpace(rec[2]))
				}
			}
		case sectionData:
			if columns == nil {
				columns = trimAll(rec)
				continue
			}
			row, err := parseRow(rec, columns, len(points))
			if err != nil {
				return nil, err
			}
			points = append(points, row)
		default:
			return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "content before [Header] section")
		}
	}

	if columns == nil {
		return nil, apperrors.New(apperrors.ErrCodePrecondition, "missing [Data] section")
	}

	labels.Set(data.LabelDate, label.String(date))
	for i := 1; i <= Channels; i++ {
		labels.Set(data.SampleNameLabel(i), label.String(info[fmt.Sprintf("SAMPLE%d_NAME", i)]))
		labels.Set(data.SampleUnitsLabel(i), label.String(info[fmt.Sprintf("SAMPLE%d_UNITS", i)]))
	}
	if app != "" {
		labels.Set(LabelApp, label.String(app))
	}

	return data.NewRawData(columns, points, labels), nil
}

func parseRow(rec, columns []string, line int) (data.Row, error) {
	row := make(data.Row, len(columns))
	for i := range row {
		row[i] = math.NaN()
		if i >= len(rec) || columns[i] == commentColumn {
			continue
		}
		cell := strings.TrimSpace(rec[i])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				"non-numeric data cell", err, map[string]any{
					"row":    line,
					"column": columns[i],
					"value":  cell,
				})
		}
		row[i] = v
	}
	return row, nil
}

// normalizeDate converts the instrument's MM/DD/YYYY to ISO form, leaving
// anything else untouched.
func normalizeDate(s string) string {
	t, err := time.Parse("1/2/2006", s)
	if err != nil {
		return s
	}
	return t.Format(time.DateOnly)
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
