// Package gamemath holds the pure math shared by the simulation systems.
package gamemath

import "math"

// AxisScale returns per-axis speed multipliers that keep on-screen movement
// isotropic when the world is stretched to a non-square viewport. The longer
// axis gets 1, the shorter one shorter/longer.
func AxisScale(worldW, worldH float64) (sx, sy float64) {
	sx, sy = 1, 1
	switch {
	case worldW > worldH:
		sy = worldH / worldW
	case worldH > worldW:
		sx = worldW / worldH
	}
	return sx, sy
}

// Distance is the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// Within reports whether two points are strictly closer than threshold.
func Within(ax, ay, bx, by, threshold float64) bool {
	return Distance(ax, ay, bx, by) < threshold
}

// Finite reports whether both coordinates are finite numbers.
func Finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}
