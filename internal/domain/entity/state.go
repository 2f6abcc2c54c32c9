package entity

// MotionState is the kinematic state owned by a controller
type MotionState struct {
	Velocity Vec2
	Input    Vec2
	Facing   float64 // -1 or 1
	Elapsed  float64 // seconds since activation
}

// GroundState tracks floor contact and the coyote grace window
type GroundState struct {
	Grounded    bool
	InCoyote    bool
	CoyoteTimer float64 // remaining grace seconds while InCoyote

	// Raw probe results of the current tick
	OnFloor   bool
	OnCeiling bool
}

// JumpState tracks multi-jump count, the impulse window and early release
type JumpState struct {
	Count         int
	LastPressTime float64
	HasPressed    bool // false until the first accepted press
	EndedEarly    bool
	ImpulseTimer  float64 // remaining seconds of the impulse window, 0 = closed
}

// ImpulseActive reports whether vertical velocity is still pinned to jump power
func (j JumpState) ImpulseActive() bool {
	return j.ImpulseTimer > TimeEpsilon
}

// DashState tracks the dash latch, debounce, active burst and re-arm flag
type DashState struct {
	CanDash       bool
	Active        bool
	Latched       bool
	InputFrames   int  // consecutive ticks with a stable direction while latched
	LastDirection Vec2 // direction sampled on the previous latched tick
	ElapsedFrames int
	LastDashTime  float64
	HasDashed     bool // false until the first committed dash
	Locked        Vec2 // velocity held while Active
}

// TimeEpsilon absorbs float drift when countdowns are decremented by a fixed dt
const TimeEpsilon = 1e-9

// NewMotionState returns the activation defaults
func NewMotionState() MotionState {
	return MotionState{Facing: 1}
}

// NewGroundState returns the activation defaults
func NewGroundState() GroundState {
	return GroundState{Grounded: true}
}

// NewDashState returns the activation defaults
func NewDashState() DashState {
	return DashState{CanDash: true}
}
