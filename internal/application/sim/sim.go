// Package sim runs a character controller against a physics world on a fixed tick.
package sim

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/younwookim/platformcore/internal/application/system"
	"github.com/younwookim/platformcore/internal/domain/entity"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
	"github.com/younwookim/platformcore/internal/infrastructure/physics"
)

// ErrMaskExcludesWorld is returned when the probe mask would never see stage geometry
var ErrMaskExcludesWorld = errors.New("collision mask excludes the world layer")

// Sample is the observable state after one tick
type Sample struct {
	Tick       int
	Time       float64
	Position   entity.Vec2
	Velocity   entity.Vec2
	Grounded   bool
	Dashing    bool
	CanDash    bool
	JumpCount  int
	EndedEarly bool
}

// Sim owns one stage world, one character body and its controller
type Sim struct {
	cfg    *config.ControllerConfig
	stage  *entity.Stage
	world  *physics.World
	body   *physics.Body
	ctrl   *system.Controller
	logger zerolog.Logger
	spawn  entity.Vec2
	dt     float64
	tick   int
}

// New builds the world from stage, places the character at the stage spawn
// and activates its controller
func New(cfg *config.ControllerConfig, stage *entity.Stage, logger zerolog.Logger) (*Sim, error) {
	if cfg == nil || stage == nil {
		return nil, fmt.Errorf("%w: config and stage are required", system.ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("controller config: %w", err)
	}
	if cfg.Collision.EffectiveMask()&physics.WorldLayer == 0 {
		return nil, ErrMaskExcludesWorld
	}

	world := physics.NewWorld(stage)
	spawn := world.ToWorld(float64(stage.SpawnX), float64(stage.SpawnY))
	body := world.AddBody(spawn, cfg.Character.Width, cfg.Character.Height, cfg.Collision.PlayerLayer)
	ctrl := system.NewController(cfg, body, world, system.WithLogger(logger))
	if err := ctrl.Activate(); err != nil {
		return nil, fmt.Errorf("activating controller: %w", err)
	}

	return &Sim{
		cfg:    cfg,
		stage:  stage,
		world:  world,
		body:   body,
		ctrl:   ctrl,
		logger: logger,
		spawn:  spawn,
		dt:     cfg.Simulation.TickDelta(),
	}, nil
}

// Step feeds one frame of input, advances the controller and then the world
func (s *Sim) Step(f system.Frame) Sample {
	f.Apply(s.ctrl)
	s.ctrl.Step(s.dt)
	s.world.Step(s.dt)
	s.tick++
	return s.Sample()
}

// Sample reports the current state without advancing
func (s *Sim) Sample() Sample {
	return Sample{
		Tick:       s.tick,
		Time:       s.ctrl.Elapsed(),
		Position:   s.body.Position(),
		Velocity:   s.ctrl.Velocity(),
		Grounded:   s.ctrl.Grounded(),
		Dashing:    s.ctrl.Dashing(),
		CanDash:    s.ctrl.CanDash(),
		JumpCount:  s.ctrl.JumpCount(),
		EndedEarly: s.ctrl.EndedEarly(),
	}
}

// Reset returns the character to the spawn point with a fresh controller state
func (s *Sim) Reset() error {
	s.body.Teleport(s.spawn)
	s.ctrl.Deactivate()
	s.tick = 0
	return s.ctrl.Activate()
}

// SetConfig swaps the controller tuning. Character size and layers keep
// their activation values until the next New.
func (s *Sim) SetConfig(cfg *config.ControllerConfig) error {
	if err := s.ctrl.SetConfig(cfg); err != nil {
		return err
	}
	s.cfg = cfg
	s.dt = cfg.Simulation.TickDelta()
	return nil
}

func (s *Sim) Controller() *system.Controller { return s.ctrl }
func (s *Sim) World() *physics.World          { return s.world }
func (s *Sim) Body() *physics.Body            { return s.body }
func (s *Sim) Stage() *entity.Stage           { return s.stage }
func (s *Sim) Config() *config.ControllerConfig {
	return s.cfg
}

// TickDelta returns the fixed step in seconds
func (s *Sim) TickDelta() float64 {
	return s.dt
}
