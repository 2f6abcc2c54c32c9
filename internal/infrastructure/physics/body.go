package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/platformcore/internal/domain/entity"
)

// Body is a rotation-locked box driven by velocity
type Body struct {
	body  *cp.Body
	shape *cp.Shape
	size  entity.Vec2

	// set by the last clamp, cleared after the world step
	blockedX bool
	blockedY bool
}

func (b *Body) SetVelocity(v entity.Vec2) {
	b.body.SetVelocityVector(toVector(v))
}

// Velocity returns the velocity after the last world step.
// A component stopped by a face reads zero.
func (b *Body) Velocity() entity.Vec2 {
	return fromVector(b.body.Velocity())
}

func (b *Body) Bounds() (center, size entity.Vec2) {
	return b.Position(), b.size
}

func (b *Body) Position() entity.Vec2 {
	return fromVector(b.body.Position())
}

// Teleport moves the body to p and stops it. Shape bounds catch up on the next world step.
func (b *Body) Teleport(p entity.Vec2) {
	b.body.SetPosition(toVector(p))
	b.body.SetVelocityVector(cp.Vector{})
}

func (b *Body) box() cp.BB {
	p := b.body.Position()
	hw, hh := b.size.X/2, b.size.Y/2
	return cp.BB{L: p.X - hw, B: p.Y - hh, R: p.X + hw, T: p.Y + hh}
}

func (b *Body) clearBlocked() {
	v := b.body.Velocity()
	if b.blockedX {
		v.X = 0
	}
	if b.blockedY {
		v.Y = 0
	}
	b.body.SetVelocityVector(v)
	b.blockedX, b.blockedY = false, false
}
