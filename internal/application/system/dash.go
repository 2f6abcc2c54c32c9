package system

import "github.com/younwookim/platformcore/internal/domain/entity"

const (
	// DashFrames is the number of ticks a committed dash holds its velocity
	DashFrames = 6
	// DashDebounceFrames is how many ticks the direction must hold steady before a latched dash commits
	DashDebounceFrames = 3

	minDirectionTolerance = 1e-6
)

// updateDash advances an active dash or runs the latch and debounce for a pending one
func (c *Controller) updateDash() {
	d := &c.dash

	if d.Active {
		if d.ElapsedFrames >= DashFrames {
			c.endDash(c.ground.OnFloor)
			return
		}
		c.motion.Velocity = d.Locked
		d.ElapsedFrames++
		return
	}

	cfg := c.cfg.Dash
	if !cfg.Enabled {
		c.clearLatch()
		return
	}

	if c.intents.DashPressed && !d.Latched {
		d.Latched = true
		d.InputFrames = 0
	}
	if !d.Latched {
		return
	}

	if !d.CanDash || (d.HasDashed && c.motion.Elapsed-d.LastDashTime < cfg.Buffer-entity.TimeEpsilon) {
		c.clearLatch()
		return
	}

	dir := c.motion.Input
	tolerance := c.cfg.Movement.DeadZone
	if tolerance < minDirectionTolerance {
		tolerance = minDirectionTolerance
	}
	if d.InputFrames > 0 && dir.Sub(d.LastDirection).Length() <= tolerance {
		d.InputFrames++
	} else {
		d.InputFrames = 1
	}
	d.LastDirection = dir

	if d.InputFrames < DashDebounceFrames {
		return
	}
	c.commitDash(dir)
}

// commitDash locks the dash velocity along dir, or along facing when dir is neutral
func (c *Controller) commitDash(dir entity.Vec2) {
	d := &c.dash
	if dir.Length() < c.cfg.Movement.DeadZone || dir.IsZero() {
		dir = entity.Vec2{X: c.motion.Facing}
	}

	d.Locked = dir.Normalized().Scale(c.cfg.Dash.Velocity)
	c.motion.Velocity = d.Locked
	d.Active = true
	d.ElapsedFrames = 1
	d.CanDash = false
	d.HasDashed = true
	d.LastDashTime = c.motion.Elapsed
	c.clearLatch()

	c.jump.EndedEarly = false
	c.jump.ImpulseTimer = 0

	c.logger.Debug().
		Float64("vx", d.Locked.X).
		Float64("vy", d.Locked.Y).
		Float64("t", c.motion.Elapsed).
		Msg("dash committed")
	c.emit(Event{Kind: EventDashed})
}

// endDash finishes the burst. rearm restores CanDash immediately.
func (c *Controller) endDash(rearm bool) {
	c.dash.Active = false
	c.dash.ElapsedFrames = 0
	if rearm {
		c.dash.CanDash = true
	}
}

func (c *Controller) clearLatch() {
	c.dash.Latched = false
	c.dash.InputFrames = 0
	c.dash.LastDirection = entity.Vec2{}
}
