package game

import "github.com/lixenwraith/pong/constant"

// StepResult reports what happened during one simulation step
type StepResult struct {
	Scorer   Side // SideNone when no point was scored
	LeftHit  bool
	RightHit bool
}

// Match is one game from kick-off to the win score
type Match struct {
	Left  *Paddle
	Right *Paddle
	Ball  *Ball

	WinScore int

	rng Rand
}

// NewMatch sets up fresh paddles and a ball served toward the right
func NewMatch(field PlayField, rng Rand, winScore int, renormalizeBounce bool) *Match {
	if winScore <= 0 {
		winScore = constant.WinScore
	}
	ball := NewBall(SideRight, field, rng)
	ball.RenormalizeBounce = renormalizeBounce
	return &Match{
		Left:     NewPaddle(SideLeft, field),
		Right:    NewPaddle(SideRight, field),
		Ball:     ball,
		WinScore: winScore,
		rng:      rng,
	}
}

// Step runs one frame: both paddles, the ball, then collision against left and right paddles in that order
func (m *Match) Step(dt float64, field PlayField, c Controls) StepResult {
	m.Left.Update(dt, field, c)
	m.Right.Update(dt, field, c)

	var res StepResult
	res.Scorer = m.Ball.Update(dt, field, m.Left, m.Right, m.rng)
	res.LeftHit = ResolveCollision(&m.Ball.Rect, &m.Ball.Vel, m.Left.Rect)
	res.RightHit = ResolveCollision(&m.Ball.Rect, &m.Ball.Vel, m.Right.Rect)
	return res
}

// Finished reports whether either player reached the win score
func (m *Match) Finished() bool {
	return m.Left.Score >= m.WinScore || m.Right.Score >= m.WinScore
}

// Winner is the left player only with a strictly higher score
func (m *Match) Winner() Side {
	if m.Left.Score > m.Right.Score {
		return SideLeft
	}
	return SideRight
}
