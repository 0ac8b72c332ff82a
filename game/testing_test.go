package game

import "github.com/lixenwraith/pong/input"

var testField = PlayField{Width: 800, Height: 600}

// scriptedRand replays fixed draws, falling back to heads and the low bound
type scriptedRand struct {
	coins []bool
	devs  []float64
	calls int
}

func (r *scriptedRand) Coin() bool {
	r.calls++
	if len(r.coins) == 0 {
		return true
	}
	c := r.coins[0]
	r.coins = r.coins[1:]
	return c
}

func (r *scriptedRand) Range(lo, hi float64) float64 {
	r.calls++
	if len(r.devs) == 0 {
		return lo
	}
	d := r.devs[0]
	r.devs = r.devs[1:]
	return d
}

func held(keys ...input.Key) input.State {
	var s input.State
	for _, k := range keys {
		s.SetHeld(k, true)
	}
	return s
}
