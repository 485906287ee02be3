package window

import (
	"testing"

	"github.com/Gllitch404/TrabalhoCG/components"
	"github.com/stretchr/testify/assert"
)

func TestProjection(t *testing.T) {
	p := NewProjection(100, 50, 1200, 800)

	x, y := p.WorldToScreen(0, 0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = p.WorldToScreen(100, 50)
	assert.Equal(t, 1200.0, x)
	assert.Equal(t, 800.0, y, "Y grows downward")

	x, y = p.WorldToScreen(50, 12.5)
	assert.Equal(t, 600.0, x)
	assert.Equal(t, 200.0, y)
}

func TestProjectionZeroExtent(t *testing.T) {
	p := NewProjection(0, 0, 640, 480)
	assert.Equal(t, 640.0, p.ScaleX)
	assert.Equal(t, 480.0, p.ScaleY)
}

func TestRisingEdge(t *testing.T) {
	var prev bool
	presses := []bool{false, true, true, false, true}
	want := []bool{false, true, false, false, true}
	for i, p := range presses {
		assert.Equal(t, want[i], risingEdge(p, &prev), "step %d", i)
	}
}

func TestHUDLines(t *testing.T) {
	clock := &components.ClockData{Frame: 4, Direction: components.Backward, Ceiling: 9}

	assert.Equal(t, []string{"frame 4 / 9", "direction backward", "close pairs 2"}, HUDLines(clock, 2, false))
	assert.Contains(t, HUDLines(clock, 0, true), "PAUSED")
}
