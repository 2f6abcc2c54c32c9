package state

// GameState is the host's run mode around the controller
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateReplaying
	StateReplayDone
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// Ticking reports whether the simulation advances in this state
func (s GameState) Ticking() bool {
	return s == StatePlaying || s == StateReplaying
}

// TogglePause flips between a running state and Paused.
// resume is the state to return to when leaving Paused.
func (s GameState) TogglePause(resume GameState) GameState {
	switch s {
	case StatePaused:
		return resume
	case StatePlaying, StateReplaying:
		return StatePaused
	default:
		return s
	}
}
