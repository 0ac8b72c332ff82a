package input

import "time"

// HoldTracker turns press/repeat events into held key state
// Terminals send a press, then auto-repeat events after the OS repeat delay, and never a release
// The first event holds a key for delay so it spans the gap before auto-repeat starts,
// each repeat then only extends the hold by window so release is noticed quickly
type HoldTracker struct {
	delay     time.Duration
	window    time.Duration
	last      [keyCount]time.Time
	seen      uint8
	repeating uint8
	pending   uint8
}

func NewHoldTracker(delay, window time.Duration) *HoldTracker {
	if delay < window {
		delay = window
	}
	return &HoldTracker{delay: delay, window: window}
}

// Press records an event for k at now
// An event while k is held is an auto-repeat: it shortens the hold window and does not latch a new edge
func (h *HoldTracker) Press(k Key, now time.Time) {
	if k >= keyCount {
		return
	}
	bit := uint8(1) << k
	if h.heldAt(k, now) {
		h.repeating |= bit
	} else {
		h.pending |= bit
		h.repeating &^= bit
	}
	h.last[k] = now
	h.seen |= bit
}

// Snapshot returns the frame state at now and consumes latched edges
func (h *HoldTracker) Snapshot(now time.Time) State {
	var s State
	for k := Key(0); k < keyCount; k++ {
		s.SetHeld(k, h.heldAt(k, now))
	}
	s.pressed = h.pending
	h.pending = 0
	return s
}

// Reset releases every key, used when the terminal may have dropped events
func (h *HoldTracker) Reset() {
	h.seen = 0
	h.repeating = 0
	h.pending = 0
}

func (h *HoldTracker) heldAt(k Key, now time.Time) bool {
	bit := uint8(1) << k
	if h.seen&bit == 0 {
		return false
	}
	hold := h.delay
	if h.repeating&bit != 0 {
		hold = h.window
	}
	return now.Sub(h.last[k]) < hold
}
