package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector used for positions and directions
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector of v
// Zero vector is returned unchanged
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Signum returns the per-axis sign of v: -1, 0 or +1
func V2Signum(v Vec2) Vec2 {
	return Vec2{Sign(v.X), Sign(v.Y)}
}

// Sign returns -1, 0 or +1
func Sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

// Clamp restricts val to [lo, hi], hi wins when the range is inverted
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		val = lo
	}
	if val > hi {
		val = hi
	}
	return val
}
