package config

// ControllerConfig is the root config for controller.json / controller.yaml.
// Distances are world units (pixels), times are seconds, Y points up.
type ControllerConfig struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Movement   MovementConfig   `json:"movement" yaml:"movement"`
	Jump       JumpConfig       `json:"jump" yaml:"jump"`
	Gravity    GravityConfig    `json:"gravity" yaml:"gravity"`
	Dash       DashConfig       `json:"dash" yaml:"dash"`
	Collision  CollisionConfig  `json:"collision" yaml:"collision"`
	Character  CharacterConfig  `json:"character" yaml:"character"`
	Feedback   FeedbackConfig   `json:"feedback" yaml:"feedback"`
}

type SimulationConfig struct {
	TickRate int `json:"tickRate" yaml:"tickRate"` // fixed ticks per second
}

// TickDelta returns the fixed step in seconds
func (s SimulationConfig) TickDelta() float64 {
	if s.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(s.TickRate)
}

type MovementConfig struct {
	MaxSpeed           float64 `json:"maxSpeed" yaml:"maxSpeed"`
	Acceleration       float64 `json:"acceleration" yaml:"acceleration"`
	GroundDeceleration float64 `json:"groundDeceleration" yaml:"groundDeceleration"`
	AirDeceleration    float64 `json:"airDeceleration" yaml:"airDeceleration"`
	DeadZone           float64 `json:"deadZone" yaml:"deadZone"`
}

type JumpConfig struct {
	Power              float64 `json:"power" yaml:"power"`
	Buffer             float64 `json:"buffer" yaml:"buffer"`
	MaxCount           int     `json:"maxCount" yaml:"maxCount"`
	CoyoteTime         float64 `json:"coyoteTime" yaml:"coyoteTime"`
	EndEarlyMultiplier float64 `json:"endEarlyMultiplier" yaml:"endEarlyMultiplier"`
	// ReleaseWindow is the longest press-to-release interval that still counts
	// as an early release.
	ReleaseWindow float64 `json:"releaseWindow" yaml:"releaseWindow"`
}

type GravityConfig struct {
	FallAcceleration      float64 `json:"fallAcceleration" yaml:"fallAcceleration"`
	MaxFallSpeed          float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"`
	GroundingAcceleration float64 `json:"groundingAcceleration" yaml:"groundingAcceleration"`
}

type DashConfig struct {
	Enabled  bool    `json:"enabled" yaml:"enabled"`
	Velocity float64 `json:"velocity" yaml:"velocity"`
	Buffer   float64 `json:"buffer" yaml:"buffer"`
}

type CollisionConfig struct {
	GroundCheckOffset float64 `json:"groundCheckOffset" yaml:"groundCheckOffset"`
	PlayerLayer       uint32  `json:"playerLayer" yaml:"playerLayer"`
	Mask              uint32  `json:"mask" yaml:"mask"` // 0 = every layer
}

// EffectiveMask returns the layers probed by the ground sensor.
// The player layer is always excluded so probes never hit the character itself.
func (c CollisionConfig) EffectiveMask() uint32 {
	mask := c.Mask
	if mask == 0 {
		mask = ^uint32(0)
	}
	return mask &^ c.PlayerLayer
}

// CharacterConfig sizes the character's collision box
type CharacterConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `json:"screenShake" yaml:"screenShake"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Intensity float64 `json:"intensity" yaml:"intensity"`
	Decay     float64 `json:"decay" yaml:"decay"`
}

// Default returns a tuned config for a 14x22 character at 60 ticks per second
func Default() *ControllerConfig {
	return &ControllerConfig{
		Simulation: SimulationConfig{TickRate: 60},
		Movement: MovementConfig{
			MaxSpeed:           120,
			Acceleration:       900,
			GroundDeceleration: 1200,
			AirDeceleration:    500,
			DeadZone:           0.2,
		},
		Jump: JumpConfig{
			Power:              260,
			Buffer:             0.1,
			MaxCount:           2,
			CoyoteTime:         0.1,
			EndEarlyMultiplier: 3,
			ReleaseWindow:      1.0,
		},
		Gravity: GravityConfig{
			FallAcceleration:      900,
			MaxFallSpeed:          400,
			GroundingAcceleration: 20,
		},
		Dash: DashConfig{
			Enabled:  true,
			Velocity: 360,
			Buffer:   0.3,
		},
		Collision: CollisionConfig{
			GroundCheckOffset: 4,
			PlayerLayer:       1 << 1,
		},
		Character: CharacterConfig{
			Width:  14,
			Height: 22,
		},
		Feedback: FeedbackConfig{
			ScreenShake: ScreenShakeConfig{
				Enabled:   true,
				Intensity: 3,
				Decay:     0.85,
			},
		},
	}
}
