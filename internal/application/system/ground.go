package system

import (
	"github.com/younwookim/platformcore/internal/domain/entity"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
)

// GroundSensor casts the floor and ceiling probes from the body center
type GroundSensor struct {
	world World
}

// NewGroundSensor creates a sensor querying w
func NewGroundSensor(w World) *GroundSensor {
	return &GroundSensor{world: w}
}

// Sense reports floor and ceiling contact for the body's current shape.
// The probe radius is half the shape width and the reach is half its
// height shortened by the configured offset.
func (s *GroundSensor) Sense(b Body, cfg config.CollisionConfig) (floor, ceiling bool) {
	center, size := b.Bounds()
	radius := size.X / 2
	distance := size.Y/2 - cfg.GroundCheckOffset
	if distance < 0 {
		distance = 0
	}
	mask := cfg.EffectiveMask()

	floor = s.world.Probe(center, radius, Down, distance, mask)
	ceiling = s.world.Probe(center, radius, Up, distance, mask)
	return floor, ceiling
}

// senseGround updates ground, coyote and ceiling state from this tick's probes
func (c *Controller) senseGround(dt float64) {
	floor, ceiling := c.sensor.Sense(c.body, c.cfg.Collision)
	g := &c.ground
	g.OnFloor, g.OnCeiling = floor, ceiling

	switch {
	case floor && !g.Grounded:
		c.land()
		c.setGrounded(true)
	case floor && g.InCoyote:
		// Back on a floor before the grace expired. Ignored while rising.
		if !c.jump.ImpulseActive() && c.motion.Velocity.Y <= 0 {
			c.land()
		}
	case !floor && g.Grounded:
		c.leaveFloor(dt)
	}

	if ceiling && !floor && c.motion.Velocity.Y >= 0 {
		c.hitCeiling()
	}
}

// land resets the airborne bookkeeping on floor contact
func (c *Controller) land() {
	c.jump.Count = 0
	c.jump.EndedEarly = false
	c.ground.InCoyote = false
	c.ground.CoyoteTimer = 0
	if !c.dash.Active {
		c.dash.CanDash = true
	}
}

// leaveFloor runs the coyote grace for a grounded character whose floor probe missed
func (c *Controller) leaveFloor(dt float64) {
	g := &c.ground
	if c.dash.Active {
		g.InCoyote = false
		g.CoyoteTimer = 0
		c.setGrounded(false)
		return
	}

	if !g.InCoyote {
		g.InCoyote = true
		g.CoyoteTimer = c.cfg.Jump.CoyoteTime
	} else {
		g.CoyoteTimer -= dt
	}

	if g.CoyoteTimer <= entity.TimeEpsilon {
		g.InCoyote = false
		g.CoyoteTimer = 0
		c.setGrounded(false)
	}
}

func (c *Controller) setGrounded(grounded bool) {
	if c.ground.Grounded == grounded {
		return
	}
	c.ground.Grounded = grounded
	c.emit(Event{Kind: EventGrounded, Grounded: grounded})
}

// hitCeiling cuts the ascent short. A dash in progress is cancelled without re-arming.
func (c *Controller) hitCeiling() {
	if c.motion.Velocity.Y > 0 {
		c.motion.Velocity.Y = 0
	}
	c.jump.ImpulseTimer = 0
	c.jump.EndedEarly = true
	if c.dash.Active {
		c.endDash(false)
	}
}
