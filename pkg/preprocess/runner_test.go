package preprocess

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/label"
	"github.com/majoplot/majoplot/pkg/plotspec"
	"github.com/majoplot/majoplot/pkg/scenario"
	"github.com/majoplot/majoplot/pkg/scenario/rt"
)

// stubScenario emits one dataset per record, named after the record, and
// fails records whose id starts with "bad".
type stubScenario struct {
	delay    time.Duration
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (s *stubScenario) Name() string            { return "stub" }
func (s *stubScenario) Layout() scenario.Layout { return scenario.Layout{} }
func (s *stubScenario) AxesSpec(_ *label.Set, _ []*data.Dataset) plotspec.AxesSpec {
	return plotspec.AxesSpec{}
}
func (s *stubScenario) FigureSpec(_ *label.Set, _ []*plotspec.Axes) plotspec.FigureSpec {
	return plotspec.FigureSpec{}
}
func (s *stubScenario) MultiAxesSpec(_ []*plotspec.Axes) (*plotspec.MultiAxesSpec, error) {
	return nil, nil
}

func (s *stubScenario) Preprocess(ctx context.Context, raw *data.RawData) ([]*data.Dataset, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	id := raw.ID()
	if len(id) >= 3 && id[:3] == "bad" {
		return nil, apperrors.New(apperrors.ErrCodePrecondition, "bad record")
	}
	l := label.NewSet()
	l.Set(data.LabelRawData, label.String(id))
	return []*data.Dataset{{Labels: l}}, nil
}

func rawWithID(id string) *data.RawData {
	l := label.NewSet()
	l.Set(data.LabelRawData, label.String(id))
	return data.NewRawData(nil, nil, l)
}

func TestRunner_OrderAndIsolation(t *testing.T) {
	runner := NewRunner(&stubScenario{delay: time.Millisecond}, WithConcurrency(3))

	raws := []*data.RawData{
		rawWithID("a"), rawWithID("bad-1"), rawWithID("b"), rawWithID("c"), rawWithID("bad-2"),
	}
	res, err := runner.Run(context.Background(), raws)
	require.NoError(t, err)

	_, err = uuid.Parse(res.ID)
	assert.NoError(t, err)
	assert.Equal(t, "stub", res.Scenario)
	assert.Equal(t, 5, res.Inputs)
	assert.Equal(t, 3, res.Succeeded())

	var ids []string
	for _, ds := range res.Datasets {
		ids = append(ids, ds.Labels.Render(data.LabelRawData))
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	require.Len(t, res.Failures, 2)
	assert.Equal(t, 1, res.Failures[0].Index)
	assert.Equal(t, "bad-1", res.Failures[0].RawData)
	assert.Equal(t, apperrors.ErrCodePrecondition, res.Failures[0].Code)
	assert.Equal(t, 4, res.Failures[1].Index)
}

func TestRunner_BoundedConcurrency(t *testing.T) {
	stub := &stubScenario{delay: 5 * time.Millisecond}
	runner := NewRunner(stub, WithConcurrency(2))

	raws := make([]*data.RawData, 10)
	for i := range raws {
		raws[i] = rawWithID(fmt.Sprintf("r%d", i))
	}
	_, err := runner.Run(context.Background(), raws)
	require.NoError(t, err)
	assert.LessOrEqual(t, stub.peak.Load(), int32(2))
}

func TestRunner_Canceled(t *testing.T) {
	runner := NewRunner(&stubScenario{delay: time.Second}, WithConcurrency(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runner.Run(ctx, []*data.RawData{rawWithID("a"), rawWithID("b")})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestRunner_DefaultConcurrency(t *testing.T) {
	runner := NewRunner(&stubScenario{}, WithConcurrency(0))
	assert.GreaterOrEqual(t, runner.concurrency, 1)
}

func TestRunner_RTScenario(t *testing.T) {
	cols := []string{
		"Temperature (K)", "Magnetic Field (Oe)",
		"Bridge 1 Resistance (Ohms)", "Bridge 1 Excitation (uA)",
		"Bridge 2 Resistance (Ohms)", "Bridge 2 Excitation (uA)",
		"Bridge 3 Resistance (Ohms)", "Bridge 3 Excitation (uA)",
	}
	labels := func(id string) *label.Set {
		l := label.NewSet()
		l.Set(data.LabelInstrument, label.String("PPMS"))
		l.Set(data.LabelRawData, label.String(id))
		l.Set(data.LabelDate, label.String("2024-10-15"))
		for i := 1; i <= 3; i++ {
			l.Set(data.SampleNameLabel(i), label.String(fmt.Sprintf("S%d", i)))
			l.Set(data.SampleUnitsLabel(i), label.String("Ohm"))
		}
		return l
	}

	good := data.NewRawData(cols, []data.Row{
		{300, 100, 1, 10, 2, 10, 3, 10},
		{299, 200, 1, 10, 2, 10, 3, 10},
	}, labels("good"))
	empty := data.NewRawData(cols, nil, labels("empty"))

	res, err := NewRunner(rt.New()).Run(context.Background(), []*data.RawData{empty, good})
	require.NoError(t, err)
	assert.Len(t, res.Datasets, 6)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "empty", res.Failures[0].RawData)
	assert.Equal(t, apperrors.ErrCodePrecondition, res.Failures[0].Code)
}
