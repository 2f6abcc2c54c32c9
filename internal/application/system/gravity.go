package system

import "github.com/younwookim/platformcore/internal/domain/entity"

// applyGravity sets vertical velocity for the tick. While the jump impulse is
// open it pins velocity to jump power. Grounded characters get a small
// downward bias to keep floor contact. Otherwise velocity falls toward the
// terminal speed, faster after an early release.
func (c *Controller) applyGravity(dt float64) {
	if c.dash.Active {
		return
	}
	v := &c.motion.Velocity
	j := &c.jump

	if j.ImpulseActive() {
		v.Y = c.cfg.Jump.Power
		j.ImpulseTimer -= dt
		if j.ImpulseTimer <= entity.TimeEpsilon {
			j.ImpulseTimer = 0
		}
		return
	}

	if c.ground.Grounded && !c.ground.InCoyote {
		v.Y = -c.cfg.Gravity.GroundingAcceleration
		return
	}

	accel := c.cfg.Gravity.FallAcceleration * dt
	if j.EndedEarly {
		accel *= c.cfg.Jump.EndEarlyMultiplier
	}
	v.Y = entity.MoveTowards(v.Y, -c.cfg.Gravity.MaxFallSpeed, accel)
}
