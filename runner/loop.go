// Package runner drives a tick function at a fixed rate for hosts that have
// no frame loop of their own.
package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

type Loop struct {
	tick     func()
	tickRate int
	ticks    atomic.Int64
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop calls tick tickRate times per second once Run starts. Ticks never
// overlap: a slow tick delays the next one.
func NewLoop(tick func(), tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 1
	}
	return &Loop{
		tick:     tick,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until ctx is done or Stop is called. It returns ctx.Err() in
// the first case and nil in the second.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Debugf("tick loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Debugf("tick loop cancelled after %d ticks", l.Ticks())
			return ctx.Err()
		case <-l.stopChan:
			log.Debugf("tick loop stopped after %d ticks", l.Ticks())
			return nil
		case <-ticker.C:
			l.tick()
			l.ticks.Add(1)
		}
	}
}

// Stop ends Run. Safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// Ticks returns how many ticks have completed.
func (l *Loop) Ticks() int64 {
	return l.ticks.Load()
}
