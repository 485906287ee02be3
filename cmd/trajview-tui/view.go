package main

import (
	"fmt"

	"github.com/Gllitch404/TrabalhoCG/components"
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/Gllitch404/TrabalhoCG/sim"
	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStatus  = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleAlert   = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed).Bold(true)
)

// gridCell projects a world position onto a cols x rows grid, Y down. ok is
// false for positions outside the world.
func gridCell(x, y, worldW, worldH float64, cols, rows int) (col, row int, ok bool) {
	if worldW <= 0 {
		worldW = 1
	}
	if worldH <= 0 {
		worldH = 1
	}
	col = int(x / worldW * float64(cols))
	row = int(y / worldH * float64(rows))
	// the far edge belongs to the last cell
	if col == cols && x <= worldW {
		col--
	}
	if row == rows && y <= worldH {
		row--
	}
	if x < 0 || y < 0 || col < 0 || row < 0 || col >= cols || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

func styleFor(c cfg.RGB) tcell.Style {
	rgba := c.RGBA()
	return styleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
}

func glyph(s string) rune {
	for _, r := range s {
		return r
	}
	return '*'
}

// draw renders the world into the screen, keeping the last row for status.
func draw(screen tcell.Screen, world *sim.World, paused bool) {
	screen.Clear()
	cols, height := screen.Size()
	rows := height - 1
	if cols <= 0 || rows <= 0 {
		screen.Show()
		return
	}

	worldW, worldH := world.WorldBounds()
	tracked, avatar := glyph(cfg.TUI.TrackedRune), glyph(cfg.TUI.AvatarRune)

	list := world.DrawList()
	for _, ent := range list {
		if !ent.Active {
			continue
		}
		col, row, ok := gridCell(ent.X, ent.Y, worldW, worldH, cols, rows)
		if !ok {
			continue
		}
		r := tracked
		if ent.Variant == components.VariantControlled {
			r = avatar
		}
		screen.SetContent(col, row, r, nil, styleFor(ent.Color))
	}

	status := fmt.Sprintf(" frame %d/%d  pairs %d  arrows/wasd move  space pause  q quit ",
		world.Frame(), world.Ceiling(), world.FlaggedPairs())
	if paused {
		status += " PAUSED "
	}
	style := styleStatus
	if world.FlaggedPairs() > 0 {
		style = styleAlert
	}
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		screen.SetContent(i, rows, r, nil, style)
	}
	screen.Show()
}
