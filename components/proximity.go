package components

import "github.com/yohamta/donburi"

type ProximityData struct {
	Threshold    float64
	FlaggedPairs int // pairs under the threshold during the last tick
}

var Proximity = donburi.NewComponentType[ProximityData]()
