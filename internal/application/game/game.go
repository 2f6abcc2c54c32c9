// Package game runs scenes on ebiten's fixed-tick update loop.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/younwookim/platformcore/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
// ebiten calls Update at a fixed TPS; each call is one controller tick.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   uint64
	logger  zerolog.Logger
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger used for scene transitions
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithTickRate sets the fixed tick rate. It also sets ebiten's TPS so that
// one Update is one tick.
func WithTickRate(rate int) Option {
	return func(g *Game) {
		if rate > 0 {
			g.dt = 1.0 / float64(rate)
			ebiten.SetTPS(rate)
		}
	}
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger.Debug().Str("scene", initialScene.Name()).Msg("enter scene")
	g.current.OnEnter()
	return g
}

// Update runs one fixed tick of the current scene and handles transitions.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.logger.Info().Uint64("ticks", g.ticks).Msg("quit requested")
			g.current.OnExit()
		}
		return err
	}
	g.ticks++

	if next != nil {
		g.logger.Debug().
			Str("from", g.current.Name()).
			Str("to", next.Name()).
			Msg("scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Ticks returns the number of completed ticks
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// DT returns the fixed step handed to scenes
func (g *Game) DT() float64 {
	return g.dt
}
