package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// IndexScale is the number of broad-phase units per world unit. resolv sizes
// cells in whole units, so world coordinates are scaled up before indexing.
const IndexScale = 100.0

// ObjectData is a body's footprint in the proximity broad phase.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the broad-phase grid, in index units.
type SpaceData struct {
	*resolv.Space
	ExtentW float64
	ExtentH float64
}

// Contains reports whether obj lies fully inside the grid, so every cell it
// touches exists.
func (s *SpaceData) Contains(obj *resolv.Object) bool {
	return obj.X >= 0 && obj.Y >= 0 && obj.X+obj.W < s.ExtentW && obj.Y+obj.H < s.ExtentH
}

var Space = donburi.NewComponentType[SpaceData]()
