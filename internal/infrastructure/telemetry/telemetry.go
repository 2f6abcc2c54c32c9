package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/younwookim/platformcore/internal/infrastructure/telemetry"

// Meter returns the meter of the global provider, a no-op until one is installed
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder counts controller events. It satisfies system.Listener.
type Recorder struct {
	jumps      metric.Int64Counter
	groundings metric.Int64Counter
	dashes     metric.Int64Counter
	attrs      metric.MeasurementOption
}

// NewRecorder creates the counters on m. character labels every measurement.
func NewRecorder(m metric.Meter, character string) (*Recorder, error) {
	r := &Recorder{
		attrs: metric.WithAttributes(attribute.String("character", character)),
	}

	var err error
	r.jumps, err = m.Int64Counter(
		"controller.jumps",
		metric.WithDescription("Accepted jump presses"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating jumps counter: %w", err)
	}

	r.groundings, err = m.Int64Counter(
		"controller.grounded.changes",
		metric.WithDescription("Grounded state transitions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating grounded counter: %w", err)
	}

	r.dashes, err = m.Int64Counter(
		"controller.dashes",
		metric.WithDescription("Committed dashes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dashes counter: %w", err)
	}

	return r, nil
}

func (r *Recorder) OnJumped() {
	r.jumps.Add(context.Background(), 1, r.attrs)
}

func (r *Recorder) OnGrounded(grounded bool) {
	r.groundings.Add(context.Background(), 1, r.attrs,
		metric.WithAttributes(attribute.Bool("grounded", grounded)))
}

func (r *Recorder) OnDashed() {
	r.dashes.Add(context.Background(), 1, r.attrs)
}
