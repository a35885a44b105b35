package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platformer/internal/application/system"
)

// Keys reads the physical keyboard. The scene polls it once per tick.
type Keys interface {
	// Input returns the held movement actions
	Input() system.InputState
	// JustPressed reports a key that went down this tick
	JustPressed(key ebiten.Key) bool
}

// Keyboard is the ebiten-backed Keys
type Keyboard struct{}

// Input implements Keys
func (Keyboard) Input() system.InputState {
	return system.InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump: ebiten.IsKeyPressed(ebiten.KeySpace) ||
			ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
}

// JustPressed implements Keys
func (Keyboard) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
