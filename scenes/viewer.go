package scenes

import (
	"sync"

	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/Gllitch404/TrabalhoCG/sim"
	"github.com/Gllitch404/TrabalhoCG/systems/window"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ViewerScene replays a world in the window. Input and the HUD keep running
// while playback is paused.
type ViewerScene struct {
	world *sim.World
	ecs   *ecs.ECS
	once  sync.Once
}

func NewViewerScene(world *sim.World) *ViewerScene {
	return &ViewerScene{world: world}
}

func (vs *ViewerScene) Update() error {
	vs.once.Do(vs.configure)

	window.UpdateInput(vs.ecs)
	viewer := window.GetOrCreateViewer(vs.ecs)
	if viewer.Quit {
		return ebiten.Termination
	}
	if !viewer.Paused {
		vs.world.Advance()
	}
	window.UpdateAlert(vs.ecs)
	return nil
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.HUD.Background)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

// configure wraps the world's entities in an ECS that only renders; the
// simulation systems stay inside sim.World.
func (vs *ViewerScene) configure() {
	vs.ecs = ecs.NewECS(vs.world.Entities())
	window.GetOrCreateViewer(vs.ecs)

	vs.ecs.AddRenderer(window.Default, window.DrawBodies)
	vs.ecs.AddRenderer(window.Default, window.DrawDebug)
	vs.ecs.AddRenderer(window.Default, window.DrawHUD)
}
