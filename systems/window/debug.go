package window

import (
	"github.com/Gllitch404/TrabalhoCG/components"
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/Gllitch404/TrabalhoCG/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the proximity broad-phase objects. Nothing is drawn
// when the world runs without a spatial index.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	viewer := GetOrCreateViewer(e)
	if !viewer.ShowDebug {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	proj, ok := projectionFor(e, screen)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// grid extent
	ex, ey := proj.WorldToScreen(space.ExtentW/components.IndexScale, space.ExtentH/components.IndexScale)
	vector.StrokeRect(screen, 0, 0, float32(ex), float32(ey), 1, cfg.HUD.GridColor, false)

	for _, obj := range space.Objects() {
		c := cfg.HUD.GridColor
		if obj.HasTags(tags.ResolvControlled) {
			c = cfg.Sim.AvatarColor.RGBA()
		}
		x, y := proj.WorldToScreen(obj.X/components.IndexScale, obj.Y/components.IndexScale)
		w, h := obj.W/components.IndexScale*proj.ScaleX, obj.H/components.IndexScale*proj.ScaleY
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
	}
}
