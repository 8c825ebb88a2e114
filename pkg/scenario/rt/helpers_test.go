package rt

import (
	"math"

	"github.com/majoplot/majoplot/pkg/data"
	"github.com/majoplot/majoplot/pkg/label"
)

var nan = math.NaN()

var testColumns = []string{
	HeaderTemperature,
	HeaderField,
	"Bridge 1 Resistance (Ohms)",
	"Bridge 1 Excitation (uA)",
	"Bridge 2 Resistance (Ohms)",
	"Bridge 2 Excitation (uA)",
	"Bridge 3 Resistance (Ohms)",
	"Bridge 3 Excitation (uA)",
}

func testLabels() *label.Set {
	l := label.NewSet()
	l.Set(data.LabelInstrument, label.String("PPMS"))
	l.Set(data.LabelRawData, label.String("run-01"))
	l.Set(data.LabelDate, label.String("2024-10-15"))
	for i, s := range []string{"S1", "S2", "S3"} {
		l.Set(data.SampleNameLabel(i+1), label.String(s))
		l.Set(data.SampleUnitsLabel(i+1), label.String("Ohm"))
	}
	return l
}

// sample builds one row: temperature, field, then (R, I) for bridges 1..3.
func sample(temp, field float64, ri ...float64) data.Row {
	row := data.Row{temp, field}
	row = append(row, ri...)
	for len(row) < len(testColumns) {
		row = append(row, nan)
	}
	return row
}

func newRaw(rows ...data.Row) *data.RawData {
	return data.NewRawData(testColumns, rows, testLabels())
}

func fieldRows(fields ...float64) []data.Row {
	rows := make([]data.Row, len(fields))
	for i, f := range fields {
		rows[i] = sample(300-float64(i), f, 1, 10, 2, 10, 3, 10)
	}
	return rows
}

type Row = data.Row
