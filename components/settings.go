package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ViewerData stores presentation toggles. None of it affects the simulation.
type ViewerData struct {
	Paused     bool
	ShowHUD    bool
	ShowDebug  bool
	Fullscreen bool
	Quit       bool

	// Previous frame's pressed state for edge-triggered toggles
	PrevPause      bool
	PrevFullscreen bool
	PrevHUD        bool
	PrevDebug      bool
}

var Viewer = donburi.NewComponentType[ViewerData]()

// AlertData drives the proximity banner pulse. Alpha is 0 while nothing is
// flagged.
type AlertData struct {
	Pulse *gween.Sequence
	Alpha float32
}

var Alert = donburi.NewComponentType[AlertData]()
