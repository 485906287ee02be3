package systems

import (
	"github.com/Gllitch404/TrabalhoCG/components"
	"github.com/Gllitch404/TrabalhoCG/shared/gamemath"
	"github.com/Gllitch404/TrabalhoCG/tags"
	"github.com/yohamta/donburi"
)

// UpdateAvatar applies the held movement keys to the controlled body.
func UpdateAvatar(w donburi.World) {
	inputEntry, ok := components.Input.First(w)
	if !ok {
		return
	}
	boundsEntry, ok := components.Bounds.First(w)
	if !ok {
		return
	}
	dx, dy := components.Input.Get(inputEntry).State.Axis()
	bounds := components.Bounds.Get(boundsEntry)

	tags.Controlled.Each(w, func(entry *donburi.Entry) {
		IntegrateInput(components.Body.Get(entry), components.Avatar.Get(entry), dx, dy, bounds.Width, bounds.Height)
	})
}

// IntegrateInput moves the body by speed along each requested axis, scaled
// down on the shorter world axis. The body may leave the world freely.
func IntegrateInput(body *components.BodyData, avatar *components.AvatarData, dx, dy, worldW, worldH float64) {
	sx, sy := gamemath.AxisScale(worldW, worldH)
	body.Position.X += dx * avatar.Speed * sx
	body.Position.Y += dy * avatar.Speed * sy
}
