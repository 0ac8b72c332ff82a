package game

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/vmath"
)

// Rand is the random source the ball draws serve directions from
type Rand interface {
	Coin() bool
	Range(lo, hi float64) float64
}

// Ball holds its rectangle and a direction; speed is constant.BallSpeed
type Ball struct {
	Rect vmath.Rect
	Vel  vmath.Vec2

	// RenormalizeBounce rescales Vel to unit length after a wall bounce
	// Off by default: a bounce forces Vel.Y to ±1 and keeps Vel.X, so speed changes after every bounce
	RenormalizeBounce bool
}

// NewBall creates a centered ball heading toward the given side on a 45° diagonal
func NewBall(toward Side, field PlayField, rng Rand) *Ball {
	y := -1.0
	if rng.Coin() {
		y = 1
	}
	return &Ball{
		Rect: centeredBallRect(field),
		Vel:  vmath.V2Normalize(vmath.Vec2{X: towardX(toward), Y: y}),
	}
}

// Respawn recenters the ball and serves it toward the given side
// dev is the y magnitude before normalization, coin picks its sign
func (b *Ball) Respawn(toward Side, field PlayField, coin bool, dev float64) {
	y := -dev
	if coin {
		y = dev
	}
	b.Vel = vmath.V2Normalize(vmath.Vec2{X: towardX(toward), Y: y})
	b.Rect = centeredBallRect(field)
}

// Update advances the ball, handles scoring and top/bottom walls
// Returns the side that scored this frame, or SideNone
func (b *Ball) Update(dt float64, field PlayField, left, right *Paddle, rng Rand) Side {
	// Drawn every frame whether or not a point is scored, keeps the draw sequence stable
	coin := rng.Coin()
	dev := rng.Range(constant.BallServeDevMin, constant.BallServeDevMax)

	b.Rect.X += b.Vel.X * dt * constant.BallSpeed
	b.Rect.Y += b.Vel.Y * dt * constant.BallSpeed

	scorer := SideNone
	switch {
	case b.Rect.X > field.Width-b.Rect.W:
		// Out on the right, served back toward the player who conceded
		b.Respawn(SideRight, field, coin, dev)
		left.Score++
		scorer = SideLeft
	case b.Rect.X < 0:
		b.Respawn(SideLeft, field, coin, dev)
		right.Score++
		scorer = SideRight
	}

	switch {
	case b.Rect.Y > field.Height-b.Rect.H:
		b.bounce(-1)
	case b.Rect.Y < 0:
		b.bounce(1)
	}

	return scorer
}

// bounce forces the vertical direction, X is left as is
func (b *Ball) bounce(y float64) {
	b.Vel.Y = y
	if b.RenormalizeBounce {
		b.Vel = vmath.V2Normalize(b.Vel)
	}
}

func towardX(side Side) float64 {
	if side == SideLeft {
		return -1
	}
	return 1
}

func centeredBallRect(field PlayField) vmath.Rect {
	cx, cy := field.Center()
	return vmath.NewRect(cx, cy, constant.BallWidth, constant.BallHeight)
}
