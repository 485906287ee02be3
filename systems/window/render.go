package window

import (
	"github.com/Gllitch404/TrabalhoCG/components"
	"github.com/Gllitch404/TrabalhoCG/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Projection maps world coordinates onto the screen: (0,0) top-left,
// (worldW, worldH) bottom-right, Y growing downward. Axes stretch
// independently to fill the screen.
type Projection struct {
	ScaleX, ScaleY float64
}

// NewProjection guards against a zero world extent, which would otherwise
// divide by zero for a dataset whose samples all sit on one axis.
func NewProjection(worldW, worldH float64, screenW, screenH int) Projection {
	if worldW <= 0 {
		worldW = 1
	}
	if worldH <= 0 {
		worldH = 1
	}
	return Projection{
		ScaleX: float64(screenW) / worldW,
		ScaleY: float64(screenH) / worldH,
	}
}

func (p Projection) WorldToScreen(x, y float64) (float64, float64) {
	return x * p.ScaleX, y * p.ScaleY
}

// projectionFor builds the projection for the world's bounds, if any.
func projectionFor(e *ecs.ECS, screen *ebiten.Image) (Projection, bool) {
	entry, ok := components.Bounds.First(e.World)
	if !ok {
		return Projection{}, false
	}
	b := components.Bounds.Get(entry)
	return NewProjection(b.Width, b.Height, screen.Bounds().Dx(), screen.Bounds().Dy()), true
}

// DrawBodies renders every active body as a filled square of edge Size
// centered on its position. The avatar is drawn last so it stays on top.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	proj, ok := projectionFor(e, screen)
	if !ok {
		return
	}

	draw := func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if !body.Active {
			return
		}
		x, y := proj.WorldToScreen(body.Position.X-body.Size/2, body.Position.Y-body.Size/2)
		w, h := body.Size*proj.ScaleX, body.Size*proj.ScaleY
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), body.Color.RGBA(), false)
	}

	tags.Tracked.Each(e.World, draw)
	tags.Controlled.Each(e.World, draw)
}
