package engine

import "time"

// Clock is the time source of a frame loop
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// fpsSmoothing is the weight of the newest sample in the FPS moving average
const fpsSmoothing = 0.1

// FrameTimer measures wall time between frames
type FrameTimer struct {
	clock Clock
	last  time.Time
	fps   float64
}

// NewFrameTimer creates a timer whose first Delta is zero
func NewFrameTimer(clock Clock) *FrameTimer {
	return &FrameTimer{clock: clock}
}

// Delta returns seconds elapsed since the previous call
func (t *FrameTimer) Delta() float64 {
	now := t.clock.Now()
	if t.last.IsZero() {
		t.last = now
		return 0
	}
	dt := now.Sub(t.last).Seconds()
	t.last = now

	if dt > 0 {
		sample := 1 / dt
		if t.fps == 0 {
			t.fps = sample
		} else {
			t.fps += (sample - t.fps) * fpsSmoothing
		}
	}
	return dt
}

// FPS returns the smoothed frame rate
func (t *FrameTimer) FPS() float64 {
	return t.fps
}
