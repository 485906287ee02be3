package components

import (
	"sync"
	"testing"

	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/stretchr/testify/assert"
)

func TestInputStateAxis(t *testing.T) {
	tests := []struct {
		name   string
		held   []cfg.ActionID
		dx, dy float64
	}{
		{"idle", nil, 0, 0},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, -1, 0},
		{"up right", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveRight}, 1, -1},
		{"left and right", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, 1, 0},
		{"up and down", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveDown}, 0, 1},
		{"non movement action", []cfg.ActionID{cfg.ActionPause}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s InputState
			for _, id := range tt.held {
				s.Set(id, true)
			}
			dx, dy := s.Axis()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestInputStateIgnoresUnknownActions(t *testing.T) {
	var s InputState
	s.Set(cfg.ActionNone, true)
	s.Set(cfg.ActionCount, true)
	s.Set(cfg.ActionCount+3, true)

	assert.False(t, s.Held(cfg.ActionNone))
	assert.False(t, s.Held(cfg.ActionCount))
}

func TestInputStateConcurrentWriters(t *testing.T) {
	var s InputState
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(down bool) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set(cfg.ActionMoveDown, down)
				s.Axis()
			}
		}(i%2 == 0)
	}
	wg.Wait()

	s.Reset()
	for _, id := range cfg.MoveActions {
		assert.False(t, s.Held(id))
	}
}
