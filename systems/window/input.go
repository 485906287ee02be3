package window

import (
	"github.com/Gllitch404/TrabalhoCG/components"
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard. Movement keys are copied into the world's
// input cell as held flags; viewer toggles fire once per key press.
// Must run before the simulation tick, and also while paused.
func UpdateInput(e *ecs.ECS) {
	if entry, ok := components.Input.First(e.World); ok {
		state := components.Input.Get(entry).State
		for _, id := range cfg.MoveActions {
			state.Set(id, isActionPressed(id))
		}
	}

	viewer := GetOrCreateViewer(e)
	changed := false

	if risingEdge(isActionPressed(cfg.ActionPause), &viewer.PrevPause) {
		viewer.Paused = !viewer.Paused
		log.Debugf("paused=%v", viewer.Paused)
	}
	if risingEdge(isActionPressed(cfg.ActionFullscreen), &viewer.PrevFullscreen) {
		viewer.Fullscreen = !viewer.Fullscreen
		ebiten.SetFullscreen(viewer.Fullscreen)
		changed = true
	}
	if risingEdge(isActionPressed(cfg.ActionToggleHUD), &viewer.PrevHUD) {
		viewer.ShowHUD = !viewer.ShowHUD
		changed = true
	}
	if risingEdge(isActionPressed(cfg.ActionToggleDebug), &viewer.PrevDebug) {
		viewer.ShowDebug = !viewer.ShowDebug
		changed = true
	}
	if isActionPressed(cfg.ActionQuit) {
		viewer.Quit = true
	}

	if changed {
		SaveViewerSettings(viewer)
	}
}

// risingEdge reports a press that was not held on the previous frame.
func risingEdge(pressed bool, prev *bool) bool {
	fired := pressed && !*prev
	*prev = pressed
	return fired
}

func isActionPressed(id cfg.ActionID) bool {
	for _, key := range Bindings[id].Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
