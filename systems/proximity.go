package systems

import (
	"github.com/Gllitch404/TrabalhoCG/components"
	cfg "github.com/Gllitch404/TrabalhoCG/config"
	"github.com/Gllitch404/TrabalhoCG/shared/gamemath"
	"github.com/Gllitch404/TrabalhoCG/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ProximityStep recolors bodies by proximity. It keeps reusable buffers
// between ticks, so each world needs its own.
type ProximityStep struct {
	bodies  []*components.BodyData
	objects []*resolv.Object
	outside []bool
	stamp   []int
	index   map[*resolv.Object]int
}

func NewProximityStep() *ProximityStep {
	return &ProximityStep{index: make(map[*resolv.Object]int)}
}

// Update paints every body its base color, then the alert color for both
// members of any active pair closer than the threshold.
// Must run after the tracked and controlled bodies have moved.
func (p *ProximityStep) Update(w donburi.World) {
	proxEntry, ok := components.Proximity.First(w)
	if !ok {
		return
	}
	prox := components.Proximity.Get(proxEntry)

	p.bodies = p.bodies[:0]
	p.objects = p.objects[:0]
	components.Body.Each(w, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		body.Color = body.Variant.BaseColor()
		p.bodies = append(p.bodies, body)
		p.objects = append(p.objects, components.Object.Get(entry).Object)
	})

	if spaceEntry, ok := components.Space.First(w); ok {
		prox.FlaggedPairs = p.flagIndexed(components.Space.Get(spaceEntry), prox.Threshold)
		return
	}
	prox.FlaggedPairs = FlagProximity(p.bodies, prox.Threshold)
}

// FlagProximity scans every unordered pair of active bodies and paints both
// members of a close pair with the alert color. It returns the number of
// flagged pairs. Colors are not reset here.
func FlagProximity(bodies []*components.BodyData, threshold float64) int {
	pairs := 0
	for i := 0; i < len(bodies); i++ {
		if !bodies[i].Active {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			if !bodies[j].Active {
				continue
			}
			if flagPair(bodies[i], bodies[j], threshold) {
				pairs++
			}
		}
	}
	return pairs
}

func flagPair(a, b *components.BodyData, threshold float64) bool {
	if !gamemath.Within(a.Position.X, a.Position.Y, b.Position.X, b.Position.Y, threshold) {
		return false
	}
	a.Color = cfg.Sim.AlertColor
	b.Color = cfg.Sim.AlertColor
	return true
}

// flagIndexed gives the same result as FlagProximity, using the space's
// cells to find candidates. Bodies not fully inside the space are compared
// against every other active body.
func (p *ProximityStep) flagIndexed(space *components.SpaceData, threshold float64) int {
	bodies, objects := p.bodies, p.objects
	n := len(bodies)
	p.outside = growBools(p.outside, n)
	p.stamp = growInts(p.stamp, n)
	clear(p.index)

	for i, obj := range objects {
		SyncObject(obj, bodies[i], threshold)
		p.index[obj] = i
		p.outside[i] = !space.Contains(obj)
		p.stamp[i] = -1
	}

	pairs := 0
	for i := 0; i < n; i++ {
		if !bodies[i].Active {
			continue
		}

		if p.outside[i] {
			for j := 0; j < n; j++ {
				if j == i || !bodies[j].Active || (p.outside[j] && j < i) {
					continue
				}
				if flagPair(bodies[i], bodies[j], threshold) {
					pairs++
				}
			}
			continue
		}

		check := objects[i].Check(0, 0, tags.ResolvBody)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			j, ok := p.index[o]
			if !ok || j <= i || p.outside[j] || !bodies[j].Active || p.stamp[j] == i {
				continue
			}
			p.stamp[j] = i
			if flagPair(bodies[i], bodies[j], threshold) {
				pairs++
			}
		}
	}
	return pairs
}

// SyncObject moves a body's broad-phase object onto its position. The object
// is padded by one unit per side because resolv treats the far edge as
// exclusive.
func SyncObject(obj *resolv.Object, body *components.BodyData, threshold float64) {
	size := threshold*components.IndexScale + 2
	obj.W = size
	obj.H = size
	obj.X = body.Position.X*components.IndexScale - size/2
	obj.Y = body.Position.Y*components.IndexScale - size/2
	if obj.Space != nil {
		obj.Update()
	}
}

func growBools(s []bool, n int) []bool {
	if cap(s) < n {
		return make([]bool, n)
	}
	return s[:n]
}

func growInts(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}
