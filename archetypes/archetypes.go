package archetypes

import (
	"github.com/Gllitch404/TrabalhoCG/components"
	"github.com/Gllitch404/TrabalhoCG/tags"
	"github.com/yohamta/donburi"
)

var (
	Tracked = newArchetype(
		tags.Tracked,
		components.Body,
		components.Trajectory,
		components.Object,
	)
	Controlled = newArchetype(
		tags.Controlled,
		components.Body,
		components.Avatar,
		components.Object,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Bounds = newArchetype(
		components.Bounds,
	)
	Input = newArchetype(
		components.Input,
	)
	Proximity = newArchetype(
		components.Proximity,
	)
	Space = newArchetype(
		components.Space,
	)
	Viewer = newArchetype(
		components.Viewer,
		components.Alert,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
