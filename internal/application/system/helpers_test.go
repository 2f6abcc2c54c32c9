package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformcore/internal/domain/entity"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

type probeCall struct {
	origin   entity.Vec2
	radius   float64
	dir      entity.Vec2
	distance float64
	mask     uint32
}

// fakeWorld answers probes from two switches instead of geometry
type fakeWorld struct {
	floor   bool
	ceiling bool
	calls   []probeCall
}

func (w *fakeWorld) Probe(origin entity.Vec2, radius float64, dir entity.Vec2, distance float64, mask uint32) bool {
	w.calls = append(w.calls, probeCall{origin, radius, dir, distance, mask})
	if dir.Y < 0 {
		return w.floor
	}
	return w.ceiling
}

type fakeBody struct {
	center   entity.Vec2
	size     entity.Vec2
	velocity entity.Vec2
	sets     int
}

func (b *fakeBody) SetVelocity(v entity.Vec2) {
	b.velocity = v
	b.sets++
}

func (b *fakeBody) Bounds() (entity.Vec2, entity.Vec2) {
	return b.center, b.size
}

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) OnJumped()                { r.events = append(r.events, Event{Kind: EventJumped}) }
func (r *eventRecorder) OnGrounded(grounded bool) { r.events = append(r.events, Event{Kind: EventGrounded, Grounded: grounded}) }
func (r *eventRecorder) OnDashed()                { r.events = append(r.events, Event{Kind: EventDashed}) }

func (r *eventRecorder) count(kind EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func (r *eventRecorder) reset() {
	r.events = nil
}

func createTestBody() *fakeBody {
	return &fakeBody{
		center: entity.Vec2{X: 50, Y: 27},
		size:   entity.Vec2{X: 14, Y: 22},
	}
}

// createTestController returns an activated controller standing on a floor.
// A nil cfg uses config.Default.
func createTestController(t *testing.T, cfg *config.ControllerConfig) (*Controller, *fakeBody, *fakeWorld) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	body := createTestBody()
	world := &fakeWorld{floor: true}
	c := NewController(cfg, body, world)
	require.NoError(t, c.Activate())
	return c, body, world
}

func stepN(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.Step(testDT)
	}
}
