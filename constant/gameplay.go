package constant

// Paddle
const (
	PaddleWidth  = 30.0
	PaddleHeight = 100.0

	// PaddleSpeed in play-field units per second
	PaddleSpeed = 400.0

	// PaddleInset is the x distance of a paddle's left edge from its side's screen edge
	PaddleInset = 50.0
)

// Ball
const (
	BallWidth  = 25.0
	BallHeight = 25.0

	// BallSpeed in play-field units per second, applied to a direction vector
	BallSpeed = 300.0

	// BallServeDevMin and BallServeDevMax bound the y magnitude drawn on respawn, before normalization
	BallServeDevMin = 0.5
	BallServeDevMax = 2.0
)

// Match
const (
	// WinScore ends the match when either player reaches it
	WinScore = 10
)

// UI layout
const (
	FontSize     = 40.0
	ScoreTextY   = 50.0
	DividerWidth = 5.0

	MenuText     = "Press SPACE to play!"
	PlayerOneWin = "Player 1 wins!"
	PlayerTwoWin = "Player 2 wins!"
)
