package components

import (
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Variant selects an entity's capability: replaying a trajectory or
// following user input.
type Variant int

const (
	VariantTracked Variant = iota
	VariantControlled
)

// BaseColor is the color a body shows when it is near nothing.
func (v Variant) BaseColor() cfg.RGB {
	if v == VariantControlled {
		return cfg.Sim.AvatarColor
	}
	return cfg.Sim.TrackedColor
}

func (v Variant) String() string {
	switch v {
	case VariantTracked:
		return "tracked"
	case VariantControlled:
		return "controlled"
	}
	return "unknown"
}

// BodyData is the drawable state of every entity. Only Position, Color and
// Active change after the world is built.
type BodyData struct {
	Position math.Vec2
	Color    cfg.RGB
	Size     float64 // glyph edge length in world units
	Active   bool
	Variant  Variant
}

var Body = donburi.NewComponentType[BodyData]()
