package config

// ActionID represents a logical viewer action. Key bindings live with each
// viewer, so this package stays free of any windowing library.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPause
	ActionFullscreen
	ActionToggleHUD
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// MoveActions are the four directional flags sampled by the simulation each tick.
var MoveActions = [...]ActionID{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight}
