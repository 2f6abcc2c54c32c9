// Package scene defines the Scene interface hosted by the game loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the host. The game loop calls Update once per
// fixed tick and Draw once per rendered frame.
type Scene interface {
	// Update advances the scene by one fixed tick of dt seconds.
	// A non-nil next scene replaces this one; an error stops the game.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced. Recordings are flushed here.
	OnExit()

	// Name identifies the scene in logs.
	Name() string
}
