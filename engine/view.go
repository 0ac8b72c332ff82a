package engine

import (
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/vmath"
)

// Screen names the state the frame was rendered in
type Screen string

const (
	ScreenMenu   Screen = "Menu"
	ScreenIngame Screen = "Ingame"
	ScreenEnd    Screen = "End"
)

// PaddleView is the drawable part of a paddle
type PaddleView struct {
	Rect  vmath.Rect
	Score int
}

// View is a read-only snapshot of one frame for the renderer
type View struct {
	Screen     Screen
	Field      game.PlayField
	Left       PaddleView
	Right      PaddleView
	Ball       vmath.Rect
	WinnerText string
}
