package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want float64
	}{
		{"zero stays zero", Vec{}, 0},
		{"axis", Vec{X: 3}, 1},
		{"diagonal", Vec{X: 1, Y: -1}, 1},
		{"arbitrary", Vec{X: -0.3, Y: 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.in.Normalize().Len(), 1e-9)
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	v := Vec{X: 1, Y: 2}.Add(Vec{X: 3, Y: 4}).Sub(Vec{X: 1, Y: 1}).Scale(2)
	assert.Equal(t, Vec{X: 6, Y: 10}, v)
	assert.True(t, Vec{}.IsZero())
	assert.False(t, v.IsZero())
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, 25.0, DistanceSquared(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, math.Sqrt2, Distance(1, 1, 2, 2), 1e-9)
}

func TestRectConstructors(t *testing.T) {
	r := RectFromCenter(Vec{X: 50, Y: 50}, 20, 10)
	assert.Equal(t, Rect{X: 40, Y: 45, W: 20, H: 10}, r)
	assert.Equal(t, Vec{X: 50, Y: 50}, r.Center())
	assert.Equal(t, Vec{X: 50, Y: 45}, r.MidTop())
	assert.Equal(t, 60.0, r.Right())
	assert.Equal(t, 55.0, r.Bottom())

	mb := RectFromMidBottom(Vec{X: 50, Y: 45}, 4, 30)
	assert.Equal(t, 45.0, mb.Bottom())
	assert.Equal(t, 50.0, mb.Center().X)
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"horizontal only", Rect{X: 2, Y: 11, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}
