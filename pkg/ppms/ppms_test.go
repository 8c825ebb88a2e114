package ppms

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/scenario/rt"
)

const sampleFile = `[Header]
; Quantum Design PPMS resistivity
TITLE,Resistivity
BYAPP, Resistivity, 1.2.0
INFO, film A, SAMPLE1_NAME
INFO, Ohm-cm, SAMPLE1_UNITS
INFO, film B, SAMPLE2_NAME
INFO, Ohm, SAMPLE2_UNITS
INFO, bulk, SAMPLE3_NAME
INFO, Ohm, SAMPLE3_UNITS
FILEOPENTIME, 3815123456.00, 10/15/2024, 9:15 AM
[Data]
Comment,Time Stamp (sec),Temperature (K),Magnetic Field (Oe),Bridge 1 Resistance (Ohms),Bridge 1 Excitation (uA),Bridge 2 Resistance (Ohms),Bridge 2 Excitation (uA),Bridge 3 Resistance (Ohms),Bridge 3 Excitation (uA)
,1.0,300.0,100.1,12.5,10.0,,,5.0,1.0
started sweep,2.0,299.0,99.8,12.4,10.0,,,5.1,1.0
,3.0,298.0,200.3,12.3,10.0,0,,5.2,1.0
`

func TestParse(t *testing.T) {
	raw, err := Parse(strings.NewReader(sampleFile), "run-01")
	require.NoError(t, err)

	assert.Equal(t, "run-01", raw.ID())
	assert.Equal(t, "PPMS", raw.Labels.Render(data.LabelInstrument))
	assert.Equal(t, "2024-10-15", raw.Labels.Render(data.LabelDate))
	assert.Equal(t, "film A", raw.Labels.Render(data.SampleNameLabel(1)))
	assert.Equal(t, "Ohm-cm", raw.Labels.Render(data.SampleUnitsLabel(1)))
	assert.Equal(t, "bulk", raw.Labels.Render(data.SampleNameLabel(3)))
	assert.Equal(t, "Resistivity", raw.Labels.Render(LabelApp))

	require.Len(t, raw.Points, 3)
	tc, err := raw.Column("Temperature (K)")
	require.NoError(t, err)
	assert.Equal(t, 300.0, raw.Points[0][tc])

	assert.True(t, data.IsNull(raw.Points[1][0]), "comment column is null")
	r2, err := raw.Column("Bridge 2 Resistance (Ohms)")
	require.NoError(t, err)
	assert.True(t, data.IsNull(raw.Points[0][r2]))
	assert.Equal(t, 0.0, raw.Points[2][r2])
}

func TestParse_FeedsRTScenario(t *testing.T) {
	raw, err := Parse(strings.NewReader(sampleFile), "run-01")
	require.NoError(t, err)

	datasets, err := rt.New().Preprocess(context.Background(), raw)
	require.NoError(t, err)

	// stage 100: bridges 1 and 3; stage 200: bridges 1 and 3 (bridge 2 never valid)
	require.Len(t, datasets, 4)
	assert.Equal(t, "100 Oe", datasets[0].Labels.Render(rt.LabelField))
	assert.Equal(t, "Bridge 3", datasets[1].Labels.Render(rt.LabelBridge))
	assert.Equal(t, "200 Oe", datasets[2].Labels.Render(rt.LabelField))
	assert.Equal(t, "film A", datasets[0].Labels.Render(rt.LabelSampleName))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code apperrors.ErrorCode
	}{
		{
			name: "no data section",
			in:   "[Header]\nTITLE,x\n",
			code: apperrors.ErrCodePrecondition,
		},
		{
			name: "non numeric cell",
			in:   "[Header]\n[Data]\nTemperature (K),Magnetic Field (Oe)\n300,abc\n",
			code: apperrors.ErrCodeInvalidRequest,
		},
		{
			name: "content before header",
			in:   "garbage\n[Header]\n",
			code: apperrors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in), "x")
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.CodeOf(err))
		})
	}
}

func TestParse_MissingSampleInfo(t *testing.T) {
	raw, err := Parse(strings.NewReader("[Header]\n[Data]\nTemperature (K)\n300\n"), "bare")
	require.NoError(t, err)
	assert.True(t, raw.Labels.Has(data.SampleNameLabel(2)))
	assert.Equal(t, "", raw.Labels.Render(data.SampleNameLabel(2)))
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-10-15", normalizeDate("10/15/2024"))
	assert.Equal(t, "2024-01-05", normalizeDate("1/5/2024"))
	assert.Equal(t, "yesterday", normalizeDate("yesterday"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep_300K.dat")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o600))

	raw, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sweep_300K", raw.ID())

	_, err = Load(filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}
