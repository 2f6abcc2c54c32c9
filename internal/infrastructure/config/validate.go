package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is matched by every ParamError
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError names a single config field that failed validation
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// Validate checks every invariant of the config and returns all violations joined.
// A nil return means the config is safe to hand to a controller.
func (c *ControllerConfig) Validate() error {
	var errs []error

	nonNegative := func(field string, v float64) {
		switch {
		case !finite(v):
			errs = append(errs, &ParamError{Field: field, Value: v, Reason: "must be finite"})
		case v < 0:
			errs = append(errs, &ParamError{Field: field, Value: v, Reason: "must be >= 0"})
		}
	}

	if c.Simulation.TickRate <= 0 {
		errs = append(errs, &ParamError{Field: "simulation.tickRate", Value: float64(c.Simulation.TickRate), Reason: "must be > 0"})
	}

	nonNegative("movement.maxSpeed", c.Movement.MaxSpeed)
	nonNegative("movement.acceleration", c.Movement.Acceleration)
	nonNegative("movement.groundDeceleration", c.Movement.GroundDeceleration)
	nonNegative("movement.airDeceleration", c.Movement.AirDeceleration)
	nonNegative("movement.deadZone", c.Movement.DeadZone)

	nonNegative("jump.power", c.Jump.Power)
	nonNegative("jump.buffer", c.Jump.Buffer)
	nonNegative("jump.coyoteTime", c.Jump.CoyoteTime)
	nonNegative("jump.endEarlyMultiplier", c.Jump.EndEarlyMultiplier)
	nonNegative("jump.releaseWindow", c.Jump.ReleaseWindow)
	if c.Jump.MaxCount < 1 {
		errs = append(errs, &ParamError{Field: "jump.maxCount", Value: float64(c.Jump.MaxCount), Reason: "must be >= 1"})
	}

	nonNegative("gravity.fallAcceleration", c.Gravity.FallAcceleration)
	nonNegative("gravity.maxFallSpeed", c.Gravity.MaxFallSpeed)
	nonNegative("gravity.groundingAcceleration", c.Gravity.GroundingAcceleration)

	nonNegative("dash.velocity", c.Dash.Velocity)
	nonNegative("dash.buffer", c.Dash.Buffer)

	nonNegative("collision.groundCheckOffset", c.Collision.GroundCheckOffset)
	if c.Collision.PlayerLayer == 0 {
		errs = append(errs, &ParamError{Field: "collision.playerLayer", Value: 0, Reason: "must name a layer"})
	}
	if c.Collision.EffectiveMask() == 0 {
		errs = append(errs, &ParamError{Field: "collision.mask", Value: float64(c.Collision.Mask), Reason: "probes no layer once the player layer is removed"})
	}

	nonNegative("character.width", c.Character.Width)
	nonNegative("character.height", c.Character.Height)

	nonNegative("feedback.screenShake.intensity", c.Feedback.ScreenShake.Intensity)
	if d := c.Feedback.ScreenShake.Decay; !finite(d) || d < 0 || d >= 1 {
		errs = append(errs, &ParamError{Field: "feedback.screenShake.decay", Value: d, Reason: "must be in [0, 1)"})
	}

	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
