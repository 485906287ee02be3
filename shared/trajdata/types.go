// Package trajdata provides trajectory dataset parsing and normalization.
// It has no dependencies on ebitengine, donburi or resolv.
package trajdata

import (
	"errors"
	"fmt"
)

var (
	// ErrDataUnavailable is returned when the dataset cannot be opened or read.
	ErrDataUnavailable = errors.New("trajectory data unavailable")
	// ErrInvalidScale is returned for a zero, negative or non-finite scaling factor.
	ErrInvalidScale = errors.New("invalid scaling factor")
)

// RawSample is one recorded (x, y, frame) triple, in raw scaled integer units.
type RawSample struct {
	X, Y  int
	Frame int
}

// Point is a position in world space (raw coordinates divided by the scale).
type Point struct {
	X, Y float64
}

// Dataset is the in-memory shape produced by ingestion.
type Dataset struct {
	Scale float64
	Paths [][]RawSample // one path per recorded entity, in file order
	MaxX  int
	MaxY  int
}

// Bounds returns the world extent of the dataset.
func (d *Dataset) Bounds() (width, height float64) {
	return float64(d.MaxX) / d.Scale, float64(d.MaxY) / d.Scale
}

// ParseError reports a malformed header or coordinate token.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse dataset line %d: %s", e.Line, e.Msg)
}
