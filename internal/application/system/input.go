package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platformcore/internal/domain/entity"
)

// KeyBindings maps keyboard keys to controller input
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Down  []ebiten.Key
	Jump  []ebiten.Key
	Dash  []ebiten.Key
}

// DefaultKeyBindings returns WASD/arrows with Space to jump and Shift or K to dash
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Jump:  []ebiten.Key{ebiten.KeySpace},
		Dash:  []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyK},
	}
}

// InputSystem turns keyboard state into controller frames
type InputSystem struct {
	keys KeyBindings
}

// NewInputSystem creates an input system with the given bindings
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{keys: keys}
}

// InputState holds the raw key state of one update
type InputState struct {
	Left         bool
	Right        bool
	Up           bool
	Down         bool
	JumpPressed  bool
	JumpReleased bool
	Dash         bool
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         anyPressed(s.keys.Left),
		Right:        anyPressed(s.keys.Right),
		Up:           anyPressed(s.keys.Up),
		Down:         anyPressed(s.keys.Down),
		JumpPressed:  anyJustPressed(s.keys.Jump),
		JumpReleased: anyJustReleased(s.keys.Jump),
		Dash:         anyJustPressed(s.keys.Dash),
	}
}

// Frame converts key state into a controller frame
func (in InputState) Frame() Frame {
	return Frame{
		Direction:    DirectionFromKeys(in.Left, in.Right, in.Up, in.Down),
		JumpPressed:  in.JumpPressed,
		JumpReleased: in.JumpReleased,
		DashPressed:  in.Dash,
	}
}

// DirectionFromKeys builds a unit direction from digital keys.
// Opposite keys cancel out. Diagonals are normalized.
func DirectionFromKeys(left, right, up, down bool) entity.Vec2 {
	var dir entity.Vec2
	if left {
		dir.X--
	}
	if right {
		dir.X++
	}
	if up {
		dir.Y++
	}
	if down {
		dir.Y--
	}
	return dir.Normalized()
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}
