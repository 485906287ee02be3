package window

import (
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = iota

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// Bindings maps every viewer action to its keyboard keys.
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMoveUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
	},
	cfg.ActionMoveDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
	},
	cfg.ActionMoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
	},
	cfg.ActionMoveRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
	},
	cfg.ActionPause: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyP},
	},
	cfg.ActionFullscreen: {
		Keys: []ebiten.Key{ebiten.KeyF11},
	},
	cfg.ActionToggleHUD: {
		Keys: []ebiten.Key{ebiten.KeyH},
	},
	cfg.ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
	cfg.ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
}
