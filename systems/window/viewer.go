package window

import (
	"github.com/Gllitch404/TrabalhoCG/archetypes"
	"github.com/Gllitch404/TrabalhoCG/components"
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateViewer returns the viewer toggles, creating them from the
// config defaults and any saved settings on first use.
func GetOrCreateViewer(e *ecs.ECS) *components.ViewerData {
	if entry, ok := components.Viewer.First(e.World); ok {
		return components.Viewer.Get(entry)
	}

	entry := archetypes.Viewer.Spawn(e.World)
	components.Viewer.SetValue(entry, components.ViewerData{
		Paused:    cfg.Debug.StartPaused,
		ShowHUD:   cfg.HUD.Visible,
		ShowDebug: cfg.Debug.ShowIndex,
	})
	components.Alert.SetValue(entry, components.AlertData{Pulse: newPulse()})

	viewer := components.Viewer.Get(entry)
	ApplySavedSettings(viewer, startupSettings)
	return viewer
}

func newPulse() *gween.Sequence {
	half := cfg.HUD.PulseSeconds / 2
	return gween.NewSequence(
		gween.New(1, 0.3, half, ease.InOutQuad),
		gween.New(0.3, 1, half, ease.InOutQuad),
	)
}

// UpdateAlert fades the proximity banner in and out while any pair is
// flagged. It runs every frame, paused or not.
func UpdateAlert(e *ecs.ECS) {
	entry, ok := components.Alert.First(e.World)
	if !ok {
		return
	}
	alert := components.Alert.Get(entry)

	proxEntry, ok := components.Proximity.First(e.World)
	if !ok || components.Proximity.Get(proxEntry).FlaggedPairs == 0 {
		alert.Alpha = 0
		alert.Pulse.Reset()
		return
	}

	alpha, _, done := alert.Pulse.Update(1 / float32(cfg.C.TPS))
	alert.Alpha = alpha
	if done {
		alert.Pulse.Reset()
	}
}
