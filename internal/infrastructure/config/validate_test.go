package config

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate_RejectsBadParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ControllerConfig)
		field  string
	}{
		{"negative max speed", func(c *ControllerConfig) { c.Movement.MaxSpeed = -10 }, "movement.maxSpeed"},
		{"negative air deceleration", func(c *ControllerConfig) { c.Movement.AirDeceleration = -1 }, "movement.airDeceleration"},
		{"negative jump buffer", func(c *ControllerConfig) { c.Jump.Buffer = -0.1 }, "jump.buffer"},
		{"zero max jump count", func(c *ControllerConfig) { c.Jump.MaxCount = 0 }, "jump.maxCount"},
		{"negative coyote time", func(c *ControllerConfig) { c.Jump.CoyoteTime = -0.2 }, "jump.coyoteTime"},
		{"negative fall acceleration", func(c *ControllerConfig) { c.Gravity.FallAcceleration = -5 }, "gravity.fallAcceleration"},
		{"negative dash buffer", func(c *ControllerConfig) { c.Dash.Buffer = -1 }, "dash.buffer"},
		{"negative ground offset", func(c *ControllerConfig) { c.Collision.GroundCheckOffset = -1 }, "collision.groundCheckOffset"},
		{"zero tick rate", func(c *ControllerConfig) { c.Simulation.TickRate = 0 }, "simulation.tickRate"},
		{"mask only covers player", func(c *ControllerConfig) { c.Collision.Mask = c.Collision.PlayerLayer }, "collision.mask"},
		{"no player layer", func(c *ControllerConfig) { c.Collision.PlayerLayer = 0 }, "collision.playerLayer"},
		{"shake never decays", func(c *ControllerConfig) { c.Feedback.ScreenShake.Decay = 1 }, "feedback.screenShake.decay"},
		{"NaN max speed", func(c *ControllerConfig) { c.Movement.MaxSpeed = math.NaN() }, "movement.maxSpeed"},
		{"infinite fall acceleration", func(c *ControllerConfig) { c.Gravity.FallAcceleration = math.Inf(1) }, "gravity.fallAcceleration"},
		{"negative infinite dash velocity", func(c *ControllerConfig) { c.Dash.Velocity = math.Inf(-1) }, "dash.velocity"},
		{"NaN shake decay", func(c *ControllerConfig) { c.Feedback.ScreenShake.Decay = math.NaN() }, "feedback.screenShake.decay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameter)

			var pe *ParamError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	cfg := Default()
	cfg.Movement.MaxSpeed = -1
	cfg.Jump.Power = -1
	cfg.Dash.Velocity = -1

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "movement.maxSpeed")
	assert.Contains(t, msg, "jump.power")
	assert.Contains(t, msg, "dash.velocity")
}

func TestCollisionConfig_EffectiveMask(t *testing.T) {
	tests := []struct {
		name string
		cfg  CollisionConfig
		want uint32
	}{
		{"zero mask means every layer but the player", CollisionConfig{PlayerLayer: 2}, ^uint32(2)},
		{"explicit mask strips player", CollisionConfig{PlayerLayer: 2, Mask: 7}, 5},
		{"no player layer", CollisionConfig{Mask: 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EffectiveMask())
		})
	}
}

func TestSimulationConfig_TickDelta(t *testing.T) {
	assert.InDelta(t, 1.0/60.0, SimulationConfig{TickRate: 60}.TickDelta(), 1e-12)
	assert.InDelta(t, 1.0/120.0, SimulationConfig{TickRate: 120}.TickDelta(), 1e-12)
	assert.InDelta(t, 1.0/60.0, SimulationConfig{}.TickDelta(), 1e-12)
}
