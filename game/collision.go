package game

import (
	"math"

	"github.com/lixenwraith/pong/vmath"
)

// ResolveCollision pushes ball out of paddle along the axis of least penetration
// and turns the velocity on that axis away from the paddle
// Disjoint rectangles leave ball and vel untouched; returns true when a contact was resolved
func ResolveCollision(ball *vmath.Rect, vel *vmath.Vec2, paddle vmath.Rect) bool {
	inter, ok := ball.Intersect(paddle)
	if !ok {
		return false
	}

	// Sign of ball -> paddle per axis, an aligned axis is 0 and counts as not positive
	to := vmath.V2Signum(vmath.V2Sub(paddle.Center(), ball.Center()))

	if inter.W > inter.H {
		// Top/bottom face
		ball.Y -= to.Y * inter.H
		if to.Y > 0 {
			vel.Y = -math.Abs(vel.Y)
		} else {
			vel.Y = math.Abs(vel.Y)
		}
		return true
	}

	// Left/right face
	ball.X -= to.X * inter.W
	if to.X < 0 {
		vel.X = math.Abs(vel.X)
	} else {
		vel.X = -math.Abs(vel.X)
	}
	return true
}
