package factory

import (
	"github.com/Gllitch404/TrabalhoCG/archetypes"
	"github.com/Gllitch404/TrabalhoCG/components"
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/Gllitch404/TrabalhoCG/shared/trajdata"
	"github.com/Gllitch404/TrabalhoCG/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateTracked spawns a body replaying traj. It starts hidden at the
// position of its first recorded frame. traj must not be empty.
func CreateTracked(w donburi.World, traj *trajdata.Trajectory) *donburi.Entry {
	tracked := archetypes.Tracked.Spawn(w)

	start, _ := traj.Start()
	components.Body.SetValue(tracked, components.BodyData{
		Position: math.NewVec2(start.X, start.Y),
		Color:    components.VariantTracked.BaseColor(),
		Size:     cfg.Sim.TrackedSize,
		Variant:  components.VariantTracked,
	})
	components.Trajectory.SetValue(tracked, components.TrajectoryData{Trajectory: traj})
	attachObject(w, tracked, tags.ResolvTracked)

	return tracked
}

// CreateAvatar spawns the user-controlled body at (x, y). It is always active.
func CreateAvatar(w donburi.World, x, y, speed float64) *donburi.Entry {
	avatar := archetypes.Controlled.Spawn(w)

	components.Body.SetValue(avatar, components.BodyData{
		Position: math.NewVec2(x, y),
		Color:    components.VariantControlled.BaseColor(),
		Size:     cfg.Sim.AvatarSize,
		Active:   true,
		Variant:  components.VariantControlled,
	})
	components.Avatar.SetValue(avatar, components.AvatarData{Speed: speed})
	attachObject(w, avatar, tags.ResolvControlled)

	return avatar
}

// attachObject gives the body its broad-phase object and registers it in the
// space when one exists.
func attachObject(w donburi.World, entry *donburi.Entry, variantTag string) {
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvBody, variantTag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
