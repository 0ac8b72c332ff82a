package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong/vmath"
)

func TestResolveCollisionNoOp(t *testing.T) {
	paddle := vmath.NewRect(50, 250, 30, 100)
	tests := []struct {
		name string
		ball vmath.Rect
	}{
		{"Far right", vmath.NewRect(400, 300, 25, 25)},
		{"Just above", vmath.NewRect(52, 224, 25, 25)},
		{"Just left", vmath.NewRect(24, 300, 25, 25)},
		{"Below", vmath.NewRect(60, 351, 25, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := tt.ball
			vel := vmath.Vec2{X: -0.6, Y: 0.8}
			p := paddle

			resolved := ResolveCollision(&ball, &vel, p)

			assert.False(t, resolved)
			assert.Equal(t, tt.ball, ball, "ball untouched")
			assert.Equal(t, vmath.Vec2{X: -0.6, Y: 0.8}, vel, "velocity untouched")
			assert.Equal(t, paddle, p, "paddle untouched")
		})
	}
}

func TestResolveCollisionFaces(t *testing.T) {
	tests := []struct {
		name     string
		ball     vmath.Rect
		paddle   vmath.Rect
		vel      vmath.Vec2
		wantBall vmath.Rect
		wantVel  vmath.Vec2
	}{
		{
			name:     "Right paddle front face",
			ball:     vmath.NewRect(750, 300, 25, 25),
			paddle:   vmath.NewRect(770, 250, 30, 100),
			vel:      vmath.Vec2{X: 0.6, Y: 0.8},
			wantBall: vmath.NewRect(745, 300, 25, 25),
			wantVel:  vmath.Vec2{X: -0.6, Y: 0.8},
		},
		{
			name:     "Left paddle front face",
			ball:     vmath.NewRect(75, 300, 25, 25),
			paddle:   vmath.NewRect(50, 250, 30, 100),
			vel:      vmath.Vec2{X: -0.6, Y: -0.8},
			wantBall: vmath.NewRect(80, 300, 25, 25),
			wantVel:  vmath.Vec2{X: 0.6, Y: -0.8},
		},
		{
			name:     "Top face",
			ball:     vmath.NewRect(52, 240, 25, 25),
			paddle:   vmath.NewRect(50, 250, 30, 100),
			vel:      vmath.Vec2{X: -0.6, Y: 0.8},
			wantBall: vmath.NewRect(52, 225, 25, 25),
			wantVel:  vmath.Vec2{X: -0.6, Y: -0.8},
		},
		{
			name:     "Bottom face",
			ball:     vmath.NewRect(52, 340, 25, 25),
			paddle:   vmath.NewRect(50, 250, 30, 100),
			vel:      vmath.Vec2{X: -0.6, Y: -0.8},
			wantBall: vmath.NewRect(52, 350, 25, 25),
			wantVel:  vmath.Vec2{X: -0.6, Y: 0.8},
		},
		{
			name:     "Already moving away keeps direction",
			ball:     vmath.NewRect(750, 300, 25, 25),
			paddle:   vmath.NewRect(770, 250, 30, 100),
			vel:      vmath.Vec2{X: -0.6, Y: 0.8},
			wantBall: vmath.NewRect(745, 300, 25, 25),
			wantVel:  vmath.Vec2{X: -0.6, Y: 0.8},
		},
		{
			name:     "Equal overlap resolves horizontally",
			ball:     vmath.NewRect(760, 240, 25, 25),
			paddle:   vmath.NewRect(770, 250, 30, 100),
			vel:      vmath.Vec2{X: 0.6, Y: 0.8},
			wantBall: vmath.NewRect(745, 240, 25, 25),
			wantVel:  vmath.Vec2{X: -0.6, Y: 0.8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball, vel := tt.ball, tt.vel
			require.True(t, ResolveCollision(&ball, &vel, tt.paddle))
			assert.Equal(t, tt.wantBall, ball)
			assert.Equal(t, tt.wantVel, vel)
		})
	}
}

func TestResolveCollisionAlignedCenter(t *testing.T) {
	// Ball fully inside the paddle's x span with equal centers: sign 0, no push, velocity turned negative
	paddle := vmath.NewRect(50, 250, 30, 100)
	ball := vmath.NewRect(52.5, 287.5, 25, 25)
	vel := vmath.Vec2{X: 0.6, Y: -0.8}

	require.True(t, ResolveCollision(&ball, &vel, paddle))
	assert.Equal(t, 52.5, ball.X)
	assert.Equal(t, -0.6, vel.X)
	assert.Equal(t, -0.8, vel.Y)
}

func TestResolveCollisionPushOut(t *testing.T) {
	rng := vmath.NewFastRand(99)
	paddle := vmath.NewRect(770, 250, 30, 100)
	const bw, bh = 25.0, 25.0

	for i := 0; i < 5000; i++ {
		// Straddle the left or right edge on x
		var x float64
		if rng.Coin() {
			x = paddle.X - bw + 0.01 + rng.Float64()*(bw-0.02)
		} else {
			x = paddle.Right() - bw + 0.01 + rng.Float64()*(bw-0.02)
		}
		// Straddle an edge or sit inside on y
		var y float64
		switch rng.Intn(3) {
		case 0:
			y = paddle.Y - bh + 0.01 + rng.Float64()*(bh-0.02)
		case 1:
			y = paddle.Bottom() - bh + 0.01 + rng.Float64()*(bh-0.02)
		default:
			y = paddle.Y + rng.Float64()*(paddle.H-bh)
		}

		ball := vmath.NewRect(x, y, bw, bh)
		before, ok := ball.Intersect(paddle)
		require.True(t, ok)
		vel := vmath.Vec2{X: 0.6, Y: 0.8}

		require.True(t, ResolveCollision(&ball, &vel, paddle))

		after, ok := ball.Intersect(paddle)
		if !ok {
			continue
		}
		if before.W > before.H {
			assert.InDelta(t, 0, after.H, 1e-9, "case %d: y overlap remains", i)
		} else {
			assert.InDelta(t, 0, after.W, 1e-9, "case %d: x overlap remains", i)
		}
	}
}
