// Package sim is the trajectory replay engine. A World owns every entity,
// the playback clock and the input cell, and advances one tick per Advance
// call. It never schedules itself: the host calls Advance at a fixed rate
// and never re-entrantly.
package sim

import (
	"errors"
	"fmt"

	"github.com/Gllitch404/TrabalhoCG/components"
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/Gllitch404/TrabalhoCG/shared/gamemath"
	"github.com/Gllitch404/TrabalhoCG/shared/trajdata"
	"github.com/Gllitch404/TrabalhoCG/systems"
	"github.com/Gllitch404/TrabalhoCG/systems/factory"
	"github.com/yohamta/donburi"
)

// ErrInvalidEntity is returned when a recorded entity has no samples.
var ErrInvalidEntity = errors.New("invalid entity")

// Entity is a read-only snapshot of one body for the presentation layer.
// Renderers must skip entities that are not Active.
type Entity struct {
	X, Y    float64
	Color   cfg.RGB
	Size    float64
	Active  bool
	Variant components.Variant
}

// World is one replay: its entities, playback clock, input cell and the
// ordered tick systems. Worlds share no state with each other.
type World struct {
	entities donburi.World
	systems  []func(donburi.World)
	input    *components.InputState
	bodies   []*donburi.Entry // tracked in dataset order, avatar last
	width    float64
	height   float64
	ceiling  int
}

// New builds a world from a parsed dataset. Nothing is returned unless every
// entity could be created.
func New(ds *trajdata.Dataset, opts ...Option) (*World, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if ds == nil || len(ds.Paths) == 0 {
		return nil, fmt.Errorf("build world: %w: no trajectories", trajdata.ErrDataUnavailable)
	}
	if err := trajdata.ValidateScale(ds.Scale); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	width, height := ds.Bounds()
	if !gamemath.Finite(width, height) {
		return nil, fmt.Errorf("build world: %w: bounds %vx%v", trajdata.ErrInvalidScale, width, height)
	}

	trajectories := trajdata.BuildTrajectories(ds.Paths, ds.Scale)
	ceiling := 0
	for i, t := range trajectories {
		if t.Len() == 0 {
			return nil, fmt.Errorf("build world: %w: trajectory %d has no samples", ErrInvalidEntity, i)
		}
		if t.Last() > ceiling {
			ceiling = t.Last()
		}
	}

	w := &World{
		entities: donburi.NewWorld(),
		input:    &components.InputState{},
		width:    width,
		height:   height,
		ceiling:  ceiling,
	}

	// Order matters: clock, then tracked bodies, then input, then proximity.
	w.systems = []func(donburi.World){
		systems.UpdateClock,
		systems.UpdateTracked,
		systems.UpdateAvatar,
		systems.NewProximityStep().Update,
	}

	factory.CreateBounds(w.entities, width, height)
	factory.CreateClock(w.entities, ceiling)
	factory.CreateInput(w.entities, w.input)
	factory.CreateProximity(w.entities, o.threshold)
	if o.spatialIndex {
		factory.CreateSpace(w.entities, width, height, float64(o.cellSize), o.threshold)
	}

	w.bodies = make([]*donburi.Entry, 0, len(trajectories)+1)
	for _, t := range trajectories {
		w.bodies = append(w.bodies, factory.CreateTracked(w.entities, t))
	}
	w.bodies = append(w.bodies, factory.CreateAvatar(w.entities, width/2, height/2, o.avatarSpeed))

	return w, nil
}

// Advance runs one tick: step the clock, replay tracked bodies, move the
// avatar from the held keys, then recolor by proximity.
func (w *World) Advance() {
	for _, system := range w.systems {
		system(w.entities)
	}
}

// DrawList returns every body, active or not, tracked first.
func (w *World) DrawList() []Entity {
	out := make([]Entity, len(w.bodies))
	for i, entry := range w.bodies {
		b := components.Body.Get(entry)
		out[i] = Entity{
			X:       b.Position.X,
			Y:       b.Position.Y,
			Color:   b.Color,
			Size:    b.Size,
			Active:  b.Active,
			Variant: b.Variant,
		}
	}
	return out
}

// WorldBounds is the projection extent, (0,0) top-left to (width,height).
func (w *World) WorldBounds() (width, height float64) {
	return w.width, w.height
}

// SetInput sets or clears a directional flag. Safe to call from any
// goroutine; the next Advance samples it.
func (w *World) SetInput(id cfg.ActionID, down bool) {
	w.input.Set(id, down)
}

// Press holds a directional flag until Release.
func (w *World) Press(id cfg.ActionID) { w.input.Set(id, true) }

// Release clears a directional flag.
func (w *World) Release(id cfg.ActionID) { w.input.Set(id, false) }

// Input exposes the input cell for hosts that poll keys on another goroutine.
func (w *World) Input() *components.InputState { return w.input }

// Frame returns the current playback frame.
func (w *World) Frame() int {
	return components.Clock.Get(components.Clock.MustFirst(w.entities)).Frame
}

// Direction returns components.Forward or components.Backward.
func (w *World) Direction() int {
	return components.Clock.Get(components.Clock.MustFirst(w.entities)).Direction
}

// Ceiling returns the largest recorded frame index.
func (w *World) Ceiling() int { return w.ceiling }

// FlaggedPairs returns how many pairs were under the threshold last tick.
func (w *World) FlaggedPairs() int {
	return components.Proximity.Get(components.Proximity.MustFirst(w.entities)).FlaggedPairs
}

// Entities exposes the entity store so a viewer can read components and
// attach its own state.
func (w *World) Entities() donburi.World { return w.entities }
