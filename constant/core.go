package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the terminal frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldDelay is how long a terminal key stays held after a fresh press
	// Covers the OS delay before auto-repeat starts, commonly 250-660ms
	KeyHoldDelay = 550 * time.Millisecond

	// KeyHoldWindow is how long a key stays held after an auto-repeat event
	// Terminals report no key release, so this bounds the release latency while repeating
	KeyHoldWindow = 100 * time.Millisecond

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Terminal cell mapping, play-field units per cell
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Window defaults
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "pong"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "pong.log"
	// MaxLogSize triggers rotation of the previous run's log (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
