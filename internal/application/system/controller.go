package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/younwookim/platformcore/internal/domain/entity"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
)

// Mover is what hosts and input adapters need from a character controller
type Mover interface {
	SetInputDirection(dir entity.Vec2)
	JumpPressed()
	JumpReleased()
	DashPressed()

	InputDirection() entity.Vec2
	Velocity() entity.Vec2
	Subscribe(l Listener) (unsubscribe func())
}

// Snapshot is a copy of every state record a controller owns
type Snapshot struct {
	Motion  entity.MotionState
	Ground  entity.GroundState
	Jump    entity.JumpState
	Dash    entity.DashState
	Intents Intents
}

// Controller is a fixed-tick kinematic character controller.
// It reads ground and ceiling probes from a World and writes velocity to a Body.
type Controller struct {
	cfg    *config.ControllerConfig
	body   Body
	world  World
	sensor *GroundSensor
	logger zerolog.Logger

	active  bool
	motion  entity.MotionState
	ground  entity.GroundState
	jump    entity.JumpState
	dash    entity.DashState
	intents Intents

	bus     *EventBus
	pending []Event
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used for lifecycle and debug output
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates an inactive controller. Call Activate before stepping.
func NewController(cfg *config.ControllerConfig, body Body, world World, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		body:   body,
		world:  world,
		logger: zerolog.Nop(),
		bus:    NewEventBus(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reset()
	return c
}

// Activate checks the collaborators and starts the controller from a clean state
func (c *Controller) Activate() error {
	if c.body == nil {
		return fmt.Errorf("%w: body is nil", ErrConfiguration)
	}
	if c.world == nil {
		return fmt.Errorf("%w: world is nil", ErrConfiguration)
	}
	if _, size := c.body.Bounds(); size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: body has no collision shape", ErrConfiguration)
	}
	if c.cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfiguration)
	}
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	c.sensor = NewGroundSensor(c.world)
	c.reset()
	c.active = true
	c.logger.Info().Msg("controller activated")
	return nil
}

// Deactivate stops the controller and drops all state and pending intents
func (c *Controller) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	c.reset()
	c.logger.Info().Msg("controller deactivated")
}

// Active reports whether Step advances the simulation
func (c *Controller) Active() bool {
	return c.active
}

func (c *Controller) reset() {
	c.motion = entity.NewMotionState()
	c.ground = entity.NewGroundState()
	c.jump = entity.JumpState{}
	c.dash = entity.NewDashState()
	c.intents = Intents{}
	c.pending = c.pending[:0]
}

// SetConfig swaps the tuning parameters. Call it between ticks.
// An invalid config is rejected and the current one stays in place.
func (c *Controller) SetConfig(cfg *config.ControllerConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.logger.Info().Msg("controller config replaced")
	return nil
}

// Config returns the active tuning parameters
func (c *Controller) Config() *config.ControllerConfig {
	return c.cfg
}

// Step advances the controller by one fixed tick of dt seconds.
// Events raised during the tick are delivered after it completes.
func (c *Controller) Step(dt float64) {
	if !c.active || dt <= 0 {
		return
	}

	c.body.SetVelocity(c.motion.Velocity)

	c.senseGround(dt)
	c.updateJump()
	c.updateMovement(dt)
	c.updateDash()
	c.applyGravity(dt)

	c.motion.Elapsed += dt
	c.intents.DashPressed = false

	c.flush()
}

func (c *Controller) emit(ev Event) {
	ev.Time = c.motion.Elapsed
	c.pending = append(c.pending, ev)
}

func (c *Controller) flush() {
	if len(c.pending) == 0 {
		return
	}
	events := c.pending
	c.pending = nil
	for _, ev := range events {
		c.bus.Publish(ev)
	}
	c.pending = events[:0]
}

// Subscribe registers l for Jumped, Grounded and Dashed notifications
func (c *Controller) Subscribe(l Listener) (unsubscribe func()) {
	return c.bus.Subscribe(l)
}

// SetInputDirection records the movement direction for the next tick.
// Vectors longer than one are normalized.
func (c *Controller) SetInputDirection(dir entity.Vec2) {
	if dir.Length() > 1 {
		dir = dir.Normalized()
	}
	c.motion.Input = dir
}

// JumpPressed raises a jump press for the next tick
func (c *Controller) JumpPressed() {
	if c.active {
		c.intents.JumpPressed = true
	}
}

// JumpReleased raises a jump release for the next tick
func (c *Controller) JumpReleased() {
	if c.active {
		c.intents.JumpReleased = true
	}
}

// DashPressed raises a dash press for the next tick
func (c *Controller) DashPressed() {
	if c.active {
		c.intents.DashPressed = true
	}
}

func (c *Controller) InputDirection() entity.Vec2 { return c.motion.Input }
func (c *Controller) Velocity() entity.Vec2       { return c.motion.Velocity }
func (c *Controller) Grounded() bool              { return c.ground.Grounded }
func (c *Controller) Dashing() bool               { return c.dash.Active }
func (c *Controller) CanDash() bool               { return c.dash.CanDash }
func (c *Controller) JumpCount() int              { return c.jump.Count }
func (c *Controller) EndedEarly() bool            { return c.jump.EndedEarly }
func (c *Controller) Facing() float64             { return c.motion.Facing }
func (c *Controller) Elapsed() float64            { return c.motion.Elapsed }

// Snapshot copies the full controller state
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Motion:  c.motion,
		Ground:  c.ground,
		Jump:    c.jump,
		Dash:    c.dash,
		Intents: c.intents,
	}
}
