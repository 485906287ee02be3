package systems

import (
	"github.com/Gllitch404/TrabalhoCG/components"
	"github.com/yohamta/donburi"
)

// UpdateClock advances the playback frame. Must run before UpdateTracked.
func UpdateClock(w donburi.World) {
	clockEntry, ok := components.Clock.First(w)
	if !ok {
		return
	}
	StepClock(components.Clock.Get(clockEntry))
}

// StepClock moves the frame one step in the current direction and bounces
// at both ends. Past the ceiling it lands on Ceiling-1, below zero on 1, so
// neither end frame is shown twice in a row.
func StepClock(c *components.ClockData) {
	c.Frame += c.Direction

	switch {
	case c.Frame > c.Ceiling:
		c.Frame = clampFrame(c.Ceiling-1, c.Ceiling)
		c.Direction = components.Backward
	case c.Frame < 0:
		c.Frame = clampFrame(1, c.Ceiling)
		c.Direction = components.Forward
	}
}

// clampFrame keeps a bounce target inside [0, ceiling]. It only bites when
// the ceiling is 0, pinning a single-frame dataset on frame 0.
func clampFrame(f, ceiling int) int {
	if f > ceiling {
		return ceiling
	}
	if f < 0 {
		return 0
	}
	return f
}
