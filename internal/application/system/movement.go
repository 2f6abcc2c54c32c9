package system

import (
	"math"

	"github.com/younwookim/platformcore/internal/domain/entity"
)

// updateMovement drives horizontal velocity toward the input target.
// Input inside the dead zone, or speed above the cap, decelerates instead.
func (c *Controller) updateMovement(dt float64) {
	if c.dash.Active {
		return
	}
	cfg := c.cfg.Movement
	in := c.motion.Input.X
	v := &c.motion.Velocity

	if in != 0 && math.Abs(in) >= cfg.DeadZone {
		c.motion.Facing = entity.Sign(in)
	}

	if math.Abs(in) < cfg.DeadZone || math.Abs(v.X) > cfg.MaxSpeed {
		decel := cfg.AirDeceleration
		if c.ground.Grounded {
			decel = cfg.GroundDeceleration
		}
		v.X = entity.MoveTowards(v.X, 0, decel*dt)
		return
	}

	v.X = entity.MoveTowards(v.X, cfg.MaxSpeed*in, cfg.Acceleration*dt)
}
