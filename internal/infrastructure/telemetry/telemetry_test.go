package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type measurement struct {
	value int64
	attrs attribute.Set
}

type fakeCounter struct {
	noop.Int64Counter
	adds []measurement
}

func (c *fakeCounter) Add(_ context.Context, incr int64, options ...metric.AddOption) {
	cfg := metric.NewAddConfig(options)
	c.adds = append(c.adds, measurement{value: incr, attrs: cfg.Attributes()})
}

// fakeMeter hands out recording counters and can fail on a given name
type fakeMeter struct {
	noop.Meter
	counters map[string]*fakeCounter
	failOn   string
}

func (m *fakeMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	if name == m.failOn {
		return nil, errors.New("boom")
	}
	c := &fakeCounter{}
	m.counters[name] = c
	return c, nil
}

func createTestMeter() *fakeMeter {
	return &fakeMeter{counters: make(map[string]*fakeCounter)}
}

func TestNewRecorder(t *testing.T) {
	t.Run("creates counters", func(t *testing.T) {
		m := createTestMeter()

		r, err := NewRecorder(m, "hero")

		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Len(t, m.counters, 3)
	})

	t.Run("propagates counter errors", func(t *testing.T) {
		m := createTestMeter()
		m.failOn = "controller.dashes"

		_, err := NewRecorder(m, "hero")

		assert.ErrorContains(t, err, "creating dashes counter")
	})

	t.Run("works on the global no-op meter", func(t *testing.T) {
		r, err := NewRecorder(Meter(), "hero")

		require.NoError(t, err)
		assert.NotPanics(t, func() {
			r.OnJumped()
			r.OnGrounded(true)
			r.OnDashed()
		})
	})
}

func TestRecorder_Events(t *testing.T) {
	m := createTestMeter()
	r, err := NewRecorder(m, "hero")
	require.NoError(t, err)

	r.OnJumped()
	r.OnJumped()
	r.OnDashed()
	r.OnGrounded(false)

	jumps := m.counters["controller.jumps"].adds
	require.Len(t, jumps, 2)
	character, ok := jumps[0].attrs.Value("character")
	require.True(t, ok)
	assert.Equal(t, "hero", character.AsString())

	assert.Len(t, m.counters["controller.dashes"].adds, 1)

	grounded := m.counters["controller.grounded.changes"].adds
	require.Len(t, grounded, 1)
	assert.Equal(t, int64(1), grounded[0].value)
	value, ok := grounded[0].attrs.Value("grounded")
	require.True(t, ok)
	assert.False(t, value.AsBool())
	_, ok = grounded[0].attrs.Value("character")
	assert.True(t, ok)
}
