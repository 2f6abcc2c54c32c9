package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		target   float64
		maxDelta float64
		want     float64
	}{
		{"step up", 0, 10, 2, 2},
		{"step down", 10, 0, 2, 8},
		{"snap when within delta", 9.5, 10, 2, 10},
		{"negative target", 0, -10, 3, -3},
		{"already at target", 5, 5, 1, 5},
		{"zero delta holds", 3, 10, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MoveTowards(tt.current, tt.target, tt.maxDelta), 1e-12)
		})
	}
}

func TestMoveTowards_NeverOvershoots(t *testing.T) {
	v := 0.0
	for i := 0; i < 100; i++ {
		v = MoveTowards(v, 10, 0.7)
		assert.LessOrEqual(t, v, 10.0)
	}
	assert.Equal(t, 10.0, v)
}

func TestVec2_Normalized(t *testing.T) {
	t.Run("unit diagonal", func(t *testing.T) {
		n := Vec2{X: 1, Y: 1}.Normalized()
		assert.InDelta(t, 1/math.Sqrt2, n.X, 1e-12)
		assert.InDelta(t, 1/math.Sqrt2, n.Y, 1e-12)
		assert.InDelta(t, 1.0, n.Length(), 1e-12)
	})

	t.Run("zero stays zero", func(t *testing.T) {
		assert.True(t, Vec2{}.Normalized().IsZero())
	})
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -1}

	assert.Equal(t, Vec2{X: 4, Y: 1}, a.Add(b))
	assert.Equal(t, Vec2{X: -2, Y: 3}, a.Sub(b))
	assert.Equal(t, Vec2{X: 2, Y: 4}, a.Scale(2))
	assert.InDelta(t, 5.0, Vec2{X: 3, Y: 4}.Length(), 1e-12)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.2))
	assert.Equal(t, -1.0, Sign(-7))
	assert.Equal(t, 0.0, Sign(0))
}
