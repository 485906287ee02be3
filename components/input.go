package components

import (
	"sync/atomic"

	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/yohamta/donburi"
)

// InputState holds the held/released flag of every action. Key callbacks may
// write it from any goroutine; the simulation reads it once per tick.
type InputState struct {
	held [cfg.ActionCount]atomic.Bool
}

// Set records whether the action is held.
func (s *InputState) Set(id cfg.ActionID, down bool) {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return
	}
	s.held[id].Store(down)
}

// Held reports whether the action is held.
func (s *InputState) Held(id cfg.ActionID) bool {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return false
	}
	return s.held[id].Load()
}

// Axis derives the movement intent. Each component is -1, 0 or 1; when both
// keys of an axis are held, right and down win.
func (s *InputState) Axis() (dx, dy float64) {
	if s.Held(cfg.ActionMoveLeft) {
		dx = -1
	}
	if s.Held(cfg.ActionMoveRight) {
		dx = 1
	}
	if s.Held(cfg.ActionMoveUp) {
		dy = -1
	}
	if s.Held(cfg.ActionMoveDown) {
		dy = 1
	}
	return dx, dy
}

// Reset releases every action.
func (s *InputState) Reset() {
	for i := range s.held {
		s.held[i].Store(false)
	}
}

// InputData points at the world's input cell.
type InputData struct {
	State *InputState
}

var Input = donburi.NewComponentType[InputData]()
