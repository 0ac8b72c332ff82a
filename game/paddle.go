package game

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/vmath"
)

// Controls is the read side of a frame's input snapshot
type Controls interface {
	Held(k input.Key) bool
}

// Paddle is a player's bat and score
type Paddle struct {
	Rect  vmath.Rect
	Side  Side
	Score int
}

// NewPaddle places a paddle at its side's inset, vertically centered
func NewPaddle(side Side, field PlayField) *Paddle {
	x := constant.PaddleInset
	if side == SideRight {
		x = field.Width - constant.PaddleInset
	}
	return &Paddle{
		Rect: vmath.NewRect(
			x,
			field.Height*0.5-constant.PaddleHeight*0.5,
			constant.PaddleWidth,
			constant.PaddleHeight,
		),
		Side: side,
	}
}

// keys returns the up/down keys bound to the paddle's side
func (p *Paddle) keys() (up, down input.Key) {
	if p.Side == SideLeft {
		return input.KeyP1Up, input.KeyP1Down
	}
	return input.KeyP2Up, input.KeyP2Down
}

// Direction returns -1 (up), +1 (down) or 0; both keys held cancel out
func (p *Paddle) Direction(c Controls) float64 {
	up, down := p.keys()
	switch u, d := c.Held(up), c.Held(down); {
	case u && !d:
		return -1
	case d && !u:
		return 1
	}
	return 0
}

// Update moves the paddle vertically and clamps it inside the field
func (p *Paddle) Update(dt float64, field PlayField, c Controls) {
	p.Rect.Y += p.Direction(c) * dt * constant.PaddleSpeed
	p.Rect.Y = vmath.Clamp(p.Rect.Y, 0, field.Height-p.Rect.H)
}
