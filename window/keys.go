package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/pong/input"
)

// keyBindings are the fixed physical keys of each logical key
var keyBindings = map[input.Key]ebiten.Key{
	input.KeyP1Up:    ebiten.KeyW,
	input.KeyP1Down:  ebiten.KeyS,
	input.KeyP2Up:    ebiten.KeyArrowUp,
	input.KeyP2Down:  ebiten.KeyArrowDown,
	input.KeyConfirm: ebiten.KeySpace,
}

// KeySource reports physical key state, ebiten's global input by default
type KeySource interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// ReadKeys snapshots the logical keys for this tick
func ReadKeys(src KeySource) input.State {
	var s input.State
	for k, phys := range keyBindings {
		s.SetHeld(k, src.IsKeyPressed(phys))
		s.SetPressed(k, src.IsKeyJustPressed(phys))
	}
	return s
}
