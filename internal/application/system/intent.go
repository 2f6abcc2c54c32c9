package system

import "github.com/younwookim/platformcore/internal/domain/entity"

// Intents holds the discrete requests raised between two ticks.
// Raising the same intent twice before a tick is the same as raising it once.
type Intents struct {
	JumpPressed  bool
	JumpReleased bool
	DashPressed  bool
}

// Any reports whether any intent is pending
func (i Intents) Any() bool {
	return i.JumpPressed || i.JumpReleased || i.DashPressed
}

// Frame is one tick's worth of input as fed to a controller
type Frame struct {
	Direction    entity.Vec2
	JumpPressed  bool
	JumpReleased bool
	DashPressed  bool
}

// Apply raises the frame's direction and intents on m
func (f Frame) Apply(m Mover) {
	m.SetInputDirection(f.Direction)
	if f.JumpPressed {
		m.JumpPressed()
	}
	if f.JumpReleased {
		m.JumpReleased()
	}
	if f.DashPressed {
		m.DashPressed()
	}
}
