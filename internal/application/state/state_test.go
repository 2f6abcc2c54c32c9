package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateReplaying, "Replaying"},
		{StateReplayDone, "ReplayDone"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_Ticking(t *testing.T) {
	assert.True(t, StatePlaying.Ticking())
	assert.True(t, StateReplaying.Ticking())
	assert.False(t, StatePaused.Ticking())
	assert.False(t, StateReplayDone.Ticking())
}

func TestGameState_TogglePause(t *testing.T) {
	tests := []struct {
		name     string
		from     GameState
		resume   GameState
		expected GameState
	}{
		{"pause play", StatePlaying, StatePlaying, StatePaused},
		{"pause replay", StateReplaying, StateReplaying, StatePaused},
		{"resume play", StatePaused, StatePlaying, StatePlaying},
		{"resume replay", StatePaused, StateReplaying, StateReplaying},
		{"finished replay stays", StateReplayDone, StateReplaying, StateReplayDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.TogglePause(tt.resume))
		})
	}
}
