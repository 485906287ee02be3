package main

import (
	"sync"

	cfg "github.com/Gllitch404/TrabalhoCG/config"
)

// inputSink receives held/released flags, normally the world's
// *components.InputState.
type inputSink interface {
	Set(id cfg.ActionID, down bool)
}

var opposite = map[cfg.ActionID]cfg.ActionID{
	cfg.ActionMoveUp:    cfg.ActionMoveDown,
	cfg.ActionMoveDown:  cfg.ActionMoveUp,
	cfg.ActionMoveLeft:  cfg.ActionMoveRight,
	cfg.ActionMoveRight: cfg.ActionMoveLeft,
}

// keyLatch turns terminal key presses, which have no release event, into
// held flags. A press holds its action for a number of ticks; key repeat
// refreshes it.
type keyLatch struct {
	mu   sync.Mutex
	hold int
	left map[cfg.ActionID]int
	sink inputSink
}

func newKeyLatch(sink inputSink, hold int) *keyLatch {
	if hold < 1 {
		hold = 1
	}
	return &keyLatch{
		hold: hold,
		left: make(map[cfg.ActionID]int),
		sink: sink,
	}
}

// Press holds id and releases the opposite direction at once.
func (k *keyLatch) Press(id cfg.ActionID) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if o, ok := opposite[id]; ok {
		if _, held := k.left[o]; held {
			delete(k.left, o)
			k.sink.Set(o, false)
		}
	}
	k.left[id] = k.hold
	k.sink.Set(id, true)
}

// Tick counts down every held action and releases the expired ones. Call it
// once per simulation tick, after Advance.
func (k *keyLatch) Tick() {
	k.mu.Lock()
	defer k.mu.Unlock()

	for id, n := range k.left {
		n--
		if n <= 0 {
			delete(k.left, id)
			k.sink.Set(id, false)
			continue
		}
		k.left[id] = n
	}
}
