package factory

import (
	"github.com/Gllitch404/TrabalhoCG/archetypes"
	"github.com/Gllitch404/TrabalhoCG/components"
	"github.com/yohamta/donburi"
)

// CreateClock starts playback at frame 0 moving forward.
func CreateClock(w donburi.World, ceiling int) *donburi.Entry {
	clock := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(clock, components.ClockData{
		Frame:     0,
		Direction: components.Forward,
		Ceiling:   ceiling,
	})
	return clock
}

func CreateBounds(w donburi.World, width, height float64) *donburi.Entry {
	bounds := archetypes.Bounds.Spawn(w)
	components.Bounds.SetValue(bounds, components.BoundsData{Width: width, Height: height})
	return bounds
}

func CreateInput(w donburi.World, state *components.InputState) *donburi.Entry {
	input := archetypes.Input.Spawn(w)
	components.Input.SetValue(input, components.InputData{State: state})
	return input
}

func CreateProximity(w donburi.World, threshold float64) *donburi.Entry {
	prox := archetypes.Proximity.Spawn(w)
	components.Proximity.SetValue(prox, components.ProximityData{Threshold: threshold})
	return prox
}
