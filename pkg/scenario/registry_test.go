package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majoplot/majoplot/pkg/data"
	apperrors "github.com/majoplot/majoplot/pkg/errors"
	"github.com/majoplot/majoplot/pkg/label"
	"github.com/majoplot/majoplot/pkg/plotspec"
)

type fakeScenario struct{ name string }

func (f *fakeScenario) Name() string   { return f.name }
func (f *fakeScenario) Layout() Layout { return Layout{MaxAxesInOneFigure: 1} }
func (f *fakeScenario) Preprocess(_ context.Context, _ *data.RawData) ([]*data.Dataset, error) {
	return nil, nil
}
func (f *fakeScenario) AxesSpec(_ *label.Set, _ []*data.Dataset) plotspec.AxesSpec {
	return plotspec.AxesSpec{}
}
func (f *fakeScenario) FigureSpec(_ *label.Set, _ []*plotspec.Axes) plotspec.FigureSpec {
	return plotspec.FigureSpec{}
}
func (f *fakeScenario) MultiAxesSpec(_ []*plotspec.Axes) (*plotspec.MultiAxesSpec, error) {
	return nil, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("fake", func() Scenario { return &fakeScenario{name: "fake"} }))

	assert.True(t, reg.Has("fake"))
	s, err := reg.Get("fake")
	require.NoError(t, err)
	assert.Equal(t, "fake", s.Name())
}

func TestRegistry_Duplicate(t *testing.T) {
	reg := NewRegistry()
	factory := func() Scenario { return &fakeScenario{name: "fake"} }

	require.NoError(t, reg.Register("fake", factory))
	assert.Error(t, reg.Register("fake", factory))
	assert.Panics(t, func() { reg.MustRegister("fake", factory) })
}

func TestRegistry_Invalid(t *testing.T) {
	reg := NewRegistry()
	assert.Error(t, reg.Register("", func() Scenario { return &fakeScenario{} }))
	assert.Error(t, reg.Register("nil", nil))
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("b", func() Scenario { return &fakeScenario{name: "b"} })
	reg.MustRegister("a", func() Scenario { return &fakeScenario{name: "a"} })

	_, err := reg.Get("missing")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
	assert.Equal(t, []string{"a", "b"}, reg.Names())
}

func TestRegistry_FactoryReturnsFreshInstances(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("fake", func() Scenario { return &fakeScenario{name: "fake"} })

	a, err := reg.Get("fake")
	require.NoError(t, err)
	b, err := reg.Get("fake")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}
