package window

import (
	"fmt"

	"github.com/Gllitch404/TrabalhoCG/components"
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/Gllitch404/TrabalhoCG/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPanelWidth = 220
	bannerText    = "PROXIMITY ALERT"
)

// HUDLines formats the playback status shown in the top-left panel.
func HUDLines(clock *components.ClockData, flagged int, paused bool) []string {
	dir := "forward"
	if clock.Direction == components.Backward {
		dir = "backward"
	}
	lines := []string{
		fmt.Sprintf("frame %d / %d", clock.Frame, clock.Ceiling),
		"direction " + dir,
		fmt.Sprintf("close pairs %d", flagged),
	}
	if paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}

// DrawHUD renders the playback status and, while anything is flagged, a
// pulsing banner along the top edge.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	viewer := GetOrCreateViewer(e)
	if !viewer.ShowHUD {
		return
	}
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	flagged := 0
	if proxEntry, ok := components.Proximity.First(e.World); ok {
		flagged = components.Proximity.Get(proxEntry).FlaggedPairs
	}

	lines := HUDLines(components.Clock.Get(clockEntry), flagged, viewer.Paused)
	face := fonts.HUD.Face()
	margin := cfg.HUD.Margin
	lineHeight := cfg.HUD.LineHeight

	panel := cfg.HUD.Background
	panel.A = 200
	vector.FillRect(screen,
		float32(margin), float32(margin),
		hudPanelWidth, float32(lineHeight*float64(len(lines))+margin),
		panel, false)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(margin*1.5, margin*1.25+lineHeight*float64(i))
		op.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
		text.Draw(screen, line, face, op)
	}

	drawBanner(e, screen)
}

func drawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Alert.First(e.World)
	if !ok {
		return
	}
	alpha := components.Alert.Get(entry).Alpha
	if alpha <= 0 {
		return
	}

	face := fonts.Banner.Face()
	width := text.Advance(bannerText, face)

	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(screen.Bounds().Dx())-width)/2, cfg.HUD.Margin)
	op.ColorScale.ScaleWithColor(cfg.HUD.BannerColor)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, bannerText, face, op)
}
