package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivationDefaults(t *testing.T) {
	motion := NewMotionState()
	assert.Equal(t, 1.0, motion.Facing)
	assert.True(t, motion.Velocity.IsZero())
	assert.Zero(t, motion.Elapsed)

	ground := NewGroundState()
	assert.True(t, ground.Grounded)
	assert.False(t, ground.InCoyote)

	dash := NewDashState()
	assert.True(t, dash.CanDash)
	assert.False(t, dash.Active)
	assert.False(t, dash.Latched)
}

func TestJumpState_ImpulseActive(t *testing.T) {
	tests := []struct {
		name  string
		timer float64
		want  bool
	}{
		{"closed", 0, false},
		{"float drift counts as closed", 1e-12, false},
		{"open", 0.05, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := JumpState{ImpulseTimer: tt.timer}
			assert.Equal(t, tt.want, j.ImpulseActive())
		})
	}
}
