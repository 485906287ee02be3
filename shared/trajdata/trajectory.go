package trajdata

// Trajectory maps frame indices to normalized positions. Frames need not be
// contiguous nor start at 0. It is immutable once built.
type Trajectory struct {
	positions map[int]Point
	first     int
	last      int
}

// BuildTrajectory normalizes samples by scale. A later sample for an already
// seen frame replaces the earlier one.
func BuildTrajectory(samples []RawSample, scale float64) *Trajectory {
	t := &Trajectory{positions: make(map[int]Point, len(samples))}
	for i, s := range samples {
		t.positions[s.Frame] = Point{X: float64(s.X) / scale, Y: float64(s.Y) / scale}
		if i == 0 || s.Frame < t.first {
			t.first = s.Frame
		}
		if i == 0 || s.Frame > t.last {
			t.last = s.Frame
		}
	}
	return t
}

// BuildTrajectories normalizes every path of a dataset with the same scale.
func BuildTrajectories(paths [][]RawSample, scale float64) []*Trajectory {
	out := make([]*Trajectory, len(paths))
	for i, p := range paths {
		out[i] = BuildTrajectory(p, scale)
	}
	return out
}

// At returns the position recorded for frame, if any. No interpolation.
func (t *Trajectory) At(frame int) (Point, bool) {
	p, ok := t.positions[frame]
	return p, ok
}

// Len returns the number of distinct frames.
func (t *Trajectory) Len() int { return len(t.positions) }

// First returns the smallest recorded frame. Meaningless when Len is 0.
func (t *Trajectory) First() int { return t.first }

// Last returns the largest recorded frame. Meaningless when Len is 0.
func (t *Trajectory) Last() int { return t.last }

// Start returns the position at the smallest recorded frame.
func (t *Trajectory) Start() (Point, bool) {
	if len(t.positions) == 0 {
		return Point{}, false
	}
	return t.positions[t.first], true
}
