package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/platformcore/internal/domain/entity"
)

func TestIntents_Any(t *testing.T) {
	assert.False(t, Intents{}.Any())
	assert.True(t, Intents{JumpPressed: true}.Any())
	assert.True(t, Intents{JumpReleased: true}.Any())
	assert.True(t, Intents{DashPressed: true}.Any())
}

func TestFrame_Apply(t *testing.T) {
	c, _, _ := createTestController(t, nil)

	Frame{
		Direction:   entity.Vec2{X: -1},
		JumpPressed: true,
		DashPressed: true,
	}.Apply(c)

	snap := c.Snapshot()
	assert.Equal(t, entity.Vec2{X: -1}, c.InputDirection())
	assert.True(t, snap.Intents.JumpPressed)
	assert.False(t, snap.Intents.JumpReleased)
	assert.True(t, snap.Intents.DashPressed)
}
