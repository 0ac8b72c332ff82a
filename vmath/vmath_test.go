package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
	}{
		{"Axis", Vec2{3, 0}},
		{"Diagonal", Vec2{1, 1}},
		{"Steep", Vec2{-1, 2}},
		{"Shallow", Vec2{1, -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := V2Normalize(tt.in)
			assert.InDelta(t, 1.0, V2Mag(n), 1e-12)
			assert.Equal(t, Sign(tt.in.X), Sign(n.X), "x direction preserved")
			assert.Equal(t, Sign(tt.in.Y), Sign(n.Y), "y direction preserved")
		})
	}

	assert.Equal(t, Vec2{}, V2Normalize(Vec2{}), "zero vector stays zero")
}

func TestV2Signum(t *testing.T) {
	assert.Equal(t, Vec2{1, -1}, V2Signum(Vec2{0.3, -7}))
	assert.Equal(t, Vec2{0, 1}, V2Signum(Vec2{0, 2}), "aligned axis has sign 0")
	assert.Equal(t, Vec2{0, 0}, V2Signum(Vec2{}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))
	assert.Equal(t, -2.0, Clamp(-5, 0, -2), "upper bound wins on inverted range")
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	t.Run("Overlap", func(t *testing.T) {
		got, ok := a.Intersect(NewRect(5, 8, 10, 10))
		require.True(t, ok)
		assert.Equal(t, NewRect(5, 8, 5, 2), got)
	})

	t.Run("Contained", func(t *testing.T) {
		got, ok := a.Intersect(NewRect(2, 3, 4, 4))
		require.True(t, ok)
		assert.Equal(t, NewRect(2, 3, 4, 4), got)
	})

	t.Run("Touching edge", func(t *testing.T) {
		got, ok := a.Intersect(NewRect(10, 2, 5, 5))
		require.True(t, ok)
		assert.Equal(t, 0.0, got.W)
		assert.False(t, a.Overlaps(NewRect(10, 2, 5, 5)))
	})

	t.Run("Disjoint", func(t *testing.T) {
		_, ok := a.Intersect(NewRect(11, 0, 5, 5))
		assert.False(t, ok)
		_, ok = a.Intersect(NewRect(0, -6, 5, 5))
		assert.False(t, ok)
	})
}

func TestRectCenter(t *testing.T) {
	r := NewRect(10, 20, 30, 100)
	assert.Equal(t, Vec2{25, 70}, r.Center())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 120.0, r.Bottom())
}

func TestFastRandRange(t *testing.T) {
	rng := NewFastRand(42)
	heads := 0
	for i := 0; i < 10000; i++ {
		v := rng.Range(0.5, 2.0)
		require.GreaterOrEqual(t, v, 0.5)
		require.Less(t, v, 2.0)
		if rng.Coin() {
			heads++
		}
	}
	// xorshift low bit is well mixed, expect a rough half
	assert.InDelta(t, 5000, heads, 500)
}

func TestFastRandZeroSeed(t *testing.T) {
	rng := NewFastRand(0)
	assert.NotZero(t, rng.Next(), "zero seed must not lock the generator")
	f := rng.Float64()
	assert.False(t, math.IsNaN(f))
	assert.Less(t, f, 1.0)
}
