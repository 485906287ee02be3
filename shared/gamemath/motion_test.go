package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisScale(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		sx, sy float64
	}{
		{"wide", 100, 50, 1, 0.5},
		{"tall", 20, 80, 0.25, 1},
		{"square", 7, 7, 1, 1},
		{"degenerate", 0, 0, 1, 1},
		{"flat", 10, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := AxisScale(tt.w, tt.h)
			assert.Equal(t, tt.sx, sx)
			assert.Equal(t, tt.sy, sy)
		})
	}
}

func TestWithinIsStrict(t *testing.T) {
	assert.True(t, Within(0, 0, 0.3, 0.3, 0.5))
	assert.False(t, Within(0, 0, 0.5, 0, 0.5), "exactly at threshold is not within")
	assert.False(t, Within(0, 0, 3, 4, 5))
	assert.True(t, Within(0, 0, 3, 4, 5.0001))
}

func TestWithinSymmetric(t *testing.T) {
	pts := [][2]float64{{0, 0}, {0.1, 0.45}, {-2, 3}, {0.49, 0}}
	for _, a := range pts {
		for _, b := range pts {
			assert.Equal(t, Within(a[0], a[1], b[0], b[1], 0.5), Within(b[0], b[1], a[0], a[1], 0.5))
		}
	}
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(1, 2))
	assert.False(t, Finite(math.Inf(1), 0))
	assert.False(t, Finite(0, math.NaN()))
}
