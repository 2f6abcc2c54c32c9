package system

import "github.com/younwookim/platformcore/internal/domain/entity"

// JumpImpulseWindow is how long vertical velocity stays pinned to jump power after a press
const JumpImpulseWindow = 0.1

// updateJump consumes this tick's jump intents. A release raised in the same
// tick as an accepted press is held over to the next tick.
func (c *Controller) updateJump() {
	accepted := false
	if c.intents.JumpPressed {
		c.intents.JumpPressed = false
		accepted = c.tryJump()
	}
	if c.intents.JumpReleased && !accepted {
		c.intents.JumpReleased = false
		c.releaseJump()
	}
}

// tryJump applies the acceptance rules and starts a jump. Rejected presses are dropped.
func (c *Controller) tryJump() bool {
	cfg := c.cfg.Jump
	j := &c.jump

	switch {
	case j.Count == 0:
		if !c.ground.Grounded {
			return false
		}
		if j.HasPressed && c.motion.Elapsed-j.LastPressTime < cfg.Buffer-entity.TimeEpsilon {
			return false
		}
	case j.Count < cfg.MaxCount:
	default:
		return false
	}

	j.Count++
	j.LastPressTime = c.motion.Elapsed
	j.HasPressed = true
	j.EndedEarly = false
	j.ImpulseTimer = 0
	if !c.dash.Active {
		j.ImpulseTimer = JumpImpulseWindow
	}

	c.logger.Debug().
		Int("count", j.Count).
		Float64("t", c.motion.Elapsed).
		Msg("jump accepted")
	c.emit(Event{Kind: EventJumped})
	return true
}

// releaseJump closes the impulse window, flagging an early end while still rising
func (c *Controller) releaseJump() {
	j := &c.jump
	if !j.ImpulseActive() {
		return
	}
	if c.motion.Velocity.Y > 0 && c.motion.Elapsed-j.LastPressTime < c.cfg.Jump.ReleaseWindow {
		j.EndedEarly = true
	}
	j.ImpulseTimer = 0
}
