package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/vmath"
)

func TestNewMatch(t *testing.T) {
	m := NewMatch(testField, &scriptedRand{}, 0, false)

	assert.Equal(t, constant.WinScore, m.WinScore, "non-positive win score falls back to default")
	assert.Equal(t, SideLeft, m.Left.Side)
	assert.Equal(t, SideRight, m.Right.Side)
	assert.Greater(t, m.Ball.Vel.X, 0.0, "kick-off serves toward the right")
	assert.False(t, m.Finished())
}

func TestMatchLeftExitScenario(t *testing.T) {
	m := NewMatch(testField, &scriptedRand{}, constant.WinScore, false)
	spawnY := m.Left.Rect.Y

	// Above the left paddle so the ball travels straight past it
	m.Ball.Rect = vmath.NewRect(200, 30, constant.BallWidth, constant.BallHeight)
	m.Ball.Vel = vmath.Vec2{X: -1, Y: 0}

	const dt = 1.0 / 60
	var res StepResult
	for frame := 0; frame < 120; frame++ {
		res = m.Step(dt, testField, input.State{})
		require.False(t, res.LeftHit, "frame %d: ball should pass above the paddle", frame)
		if res.Scorer != SideNone {
			break
		}
	}

	require.Equal(t, SideRight, res.Scorer)
	assert.Equal(t, 1, m.Right.Score)
	assert.Equal(t, 0, m.Left.Score)
	assert.Equal(t, 400.0, m.Ball.Rect.X)
	assert.Equal(t, 300.0, m.Ball.Rect.Y)
	assert.Equal(t, spawnY, m.Left.Rect.Y, "idle paddle stays at spawn")
}

func TestMatchPaddleReturn(t *testing.T) {
	m := NewMatch(testField, &scriptedRand{}, constant.WinScore, false)

	// Ball heading into the right paddle's front face
	m.Ball.Rect = vmath.NewRect(m.Right.Rect.X-constant.BallWidth-1, 300, constant.BallWidth, constant.BallHeight)
	m.Ball.Vel = vmath.Vec2{X: 1, Y: 0}

	res := m.Step(1.0/60, testField, input.State{})

	assert.True(t, res.RightHit)
	assert.False(t, res.LeftHit)
	assert.Equal(t, SideNone, res.Scorer)
	assert.Less(t, m.Ball.Vel.X, 0.0, "returned toward the left")
	assert.LessOrEqual(t, m.Ball.Rect.Right(), m.Right.Rect.X+1e-9, "pushed out of the paddle")
}

func TestMatchWinner(t *testing.T) {
	m := NewMatch(testField, &scriptedRand{}, 3, false)

	m.Left.Score, m.Right.Score = 2, 2
	assert.False(t, m.Finished())

	m.Left.Score = 3
	assert.True(t, m.Finished())
	assert.Equal(t, SideLeft, m.Winner())

	m.Left.Score, m.Right.Score = 1, 3
	assert.True(t, m.Finished())
	assert.Equal(t, SideRight, m.Winner())
}

func TestMatchPaddlesFollowControls(t *testing.T) {
	m := NewMatch(testField, &scriptedRand{}, constant.WinScore, false)
	ly, ry := m.Left.Rect.Y, m.Right.Rect.Y

	m.Step(0.1, testField, held(input.KeyP1Up, input.KeyP2Down))

	assert.Less(t, m.Left.Rect.Y, ly)
	assert.Greater(t, m.Right.Rect.Y, ry)
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, SideRight, SideLeft.Opposite())
	assert.Equal(t, SideLeft, SideRight.Opposite())
	assert.Equal(t, SideNone, SideNone.Opposite())
	assert.Equal(t, "left", SideLeft.String())
}
