package factory

import (
	"math"

	"github.com/Gllitch404/TrabalhoCG/archetypes"
	"github.com/Gllitch404/TrabalhoCG/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// maxIndexCells caps the grid allocation for very large worlds.
const maxIndexCells = 1 << 18

// CreateSpace builds the proximity grid covering the world plus one cell of
// slack. cellWorld is the cell edge in world units, never below the
// threshold.
func CreateSpace(w donburi.World, worldW, worldH, cellWorld, threshold float64) *donburi.Entry {
	cellWorld = math.Max(cellWorld, threshold)
	cell := int(math.Ceil(cellWorld * components.IndexScale))
	cols, rows := gridSize(worldW, worldH, cell)
	for cols*rows > maxIndexCells {
		cell *= 2
		cols, rows = gridSize(worldW, worldH, cell)
	}
	width, height := cols*cell, rows*cell

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(width, height, cell, cell),
		ExtentW: float64(width),
		ExtentH: float64(height),
	})
	return space
}

func gridSize(worldW, worldH float64, cell int) (cols, rows int) {
	cols = int(math.Ceil(worldW*components.IndexScale/float64(cell))) + 1
	rows = int(math.Ceil(worldH*components.IndexScale/float64(cell))) + 1
	return cols, rows
}
