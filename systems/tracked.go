package systems

import (
	"github.com/Gllitch404/TrabalhoCG/components"
	"github.com/Gllitch404/TrabalhoCG/tags"
	"github.com/yohamta/donburi"
)

// UpdateTracked moves every tracked body to its recorded position for the
// current frame.
func UpdateTracked(w donburi.World) {
	clockEntry, ok := components.Clock.First(w)
	if !ok {
		return
	}
	frame := components.Clock.Get(clockEntry).Frame

	tags.Tracked.Each(w, func(entry *donburi.Entry) {
		ResolveForFrame(components.Body.Get(entry), components.Trajectory.Get(entry), frame)
	})
}

// ResolveForFrame is an exact-key lookup, there is no interpolation: a body
// without a sample for frame is deactivated and keeps its stale position.
func ResolveForFrame(body *components.BodyData, traj *components.TrajectoryData, frame int) {
	p, ok := traj.At(frame)
	if !ok {
		body.Active = false
		return
	}
	body.Position.X = p.X
	body.Position.Y = p.Y
	body.Active = true
}
