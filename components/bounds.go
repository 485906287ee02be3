package components

import "github.com/yohamta/donburi"

// BoundsData is the world extent in world units, fixed once the dataset is loaded.
type BoundsData struct {
	Width  float64
	Height float64
}

var Bounds = donburi.NewComponentType[BoundsData]()
