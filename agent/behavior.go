package agent

import (
	"math/rand"

	"github.com/katalvlaran/navgrid/geom"
	"github.com/katalvlaran/navgrid/grid"
	"github.com/katalvlaran/navgrid/topo"
)

// Behavior layers wrap a Component and override a subset of its surface.
// Composition is linear; each layer holds exactly one inner component
// and the coordinator sees only the outermost. The canonical stack,
// outermost first:
//
//	VisualAlert → SpeedModulator → TargetJitter → [StigmergyGate] → Agent

// SpeedModulator scales the effective dt handed to the inner layer. The
// multiplier rests at a base value; a ProximityAlert flips it into a
// reactive mode with a random multiplier for a random duration.
type SpeedModulator struct {
	Component
	base  float64
	mult  float64
	timer float64
	rng   *rand.Rand
}

// NewSpeedModulator wraps inner with a dt multiplier resting at base.
// A nil rng selects the global source.
func NewSpeedModulator(inner Component, base float64, rng *rand.Rand) *SpeedModulator {
	return &SpeedModulator{Component: inner, base: base, mult: base, rng: rng}
}

// Tick runs the reactive timer, then delegates with the scaled dt.
func (m *SpeedModulator) Tick(dt float64) {
	if m.timer > 0 {
		m.timer -= dt
		if m.timer <= 0 {
			m.mult = m.base
		}
	}
	m.Component.Tick(dt * m.mult)
}

// Receive arms the reactive mode on ProximityAlert: duration in
// [0.2, 0.5] s, multiplier in [0.5, 1.4]. An already-armed timer is
// left running.
func (m *SpeedModulator) Receive(ev Event) {
	if ev.Kind == EventProximityAlert && m.timer <= 0 {
		m.timer = randRange(m.rng, 0.2, 0.5)
		m.mult = randRange(m.rng, 0.5, 1.4)
	}
	m.Component.Receive(ev)
}

// TargetJitter perturbs the desired target with a bounded random offset
// for a short window after a ProximityAlert, breaking the symmetry of
// head-on encounters.
type TargetJitter struct {
	Component
	offset geom.Vec
	timer  float64
	rng    *rand.Rand
}

// NewTargetJitter wraps inner. A nil rng selects the global source.
func NewTargetJitter(inner Component, rng *rand.Rand) *TargetJitter {
	return &TargetJitter{Component: inner, rng: rng}
}

// Tick runs the jitter timer, then delegates.
func (j *TargetJitter) Tick(dt float64) {
	if j.timer > 0 {
		j.timer -= dt
	}
	j.Component.Tick(dt)
}

// DesiredTarget adds the armed jitter to the inner target.
func (j *TargetJitter) DesiredTarget() (geom.Vec, bool) {
	t, ok := j.Component.DesiredTarget()
	if ok && j.timer > 0 {
		return t.Add(j.offset), true
	}

	return t, ok
}

// Receive arms the jitter on ProximityAlert: offset uniform in [−2,+2]²
// for a duration in [0.1, 0.3] s.
func (j *TargetJitter) Receive(ev Event) {
	if ev.Kind == EventProximityAlert && j.timer <= 0 {
		j.timer = randRange(j.rng, 0.1, 0.3)
		j.offset = geom.V(randRange(j.rng, -2, 2), randRange(j.rng, -2, 2))
	}
	j.Component.Receive(ev)
}

// VisualAlert flashes the agent color on contact events: red for 0.5 s
// on CollisionHit, orange for 0.1 s on ProximityAlert. Red dominates: an
// active red window is never downgraded. Purely presentational.
type VisualAlert struct {
	Component
	alert Color
	timer float64
}

// NewVisualAlert wraps inner.
func NewVisualAlert(inner Component) *VisualAlert {
	return &VisualAlert{Component: inner}
}

// Tick runs the flash timer, then delegates.
func (v *VisualAlert) Tick(dt float64) {
	if v.timer > 0 {
		v.timer -= dt
	}
	v.Component.Tick(dt)
}

// Receive arms the flash window.
func (v *VisualAlert) Receive(ev Event) {
	switch ev.Kind {
	case EventCollisionHit:
		v.timer, v.alert = 0.5, Red
	case EventProximityAlert:
		if v.alert != Red || v.timer <= 0 {
			v.timer, v.alert = 0.1, Orange
		}
	}
	v.Component.Receive(ev)
}

// Color returns the flash color while armed, the inner color otherwise.
func (v *VisualAlert) Color() Color {
	if v.timer > 0 {
		return v.alert
	}

	return v.Component.Color()
}

// OccupancyField is the stigmergy surface the gate needs: deposit into a
// cell and query whether a cell is saturated. Satisfied by avoid.Field.
type OccupancyField interface {
	Deposit(c grid.Coord, dt float64)
	Blocked(c grid.Coord) bool
}

// StigmergyGate couples an agent to the shared pheromone field. Every
// tick it marks the agent's current cell; a desired target that lands in
// a saturated *different* cell is refused for the tick, raising a
// ProximityAlert against SentinelID. Gating only across cell boundaries
// keeps an agent from blocking on its own trail.
type StigmergyGate struct {
	Component
	field OccupancyField
	kind  topo.Kind
}

// NewStigmergyGate wraps inner over the shared field under the given
// topology's projection.
func NewStigmergyGate(inner Component, field OccupancyField, kind topo.Kind) *StigmergyGate {
	return &StigmergyGate{Component: inner, field: field, kind: kind}
}

// Tick deposits into the current cell, then delegates.
func (g *StigmergyGate) Tick(dt float64) {
	g.field.Deposit(topo.PixelToCell(g.kind, g.Component.Position()), dt)
	g.Component.Tick(dt)
}

// DesiredTarget refuses saturated foreign cells.
func (g *StigmergyGate) DesiredTarget() (geom.Vec, bool) {
	t, ok := g.Component.DesiredTarget()
	if !ok {
		return geom.Vec{}, false
	}

	cur := topo.PixelToCell(g.kind, g.Component.Position())
	tgt := topo.PixelToCell(g.kind, t)
	if tgt != cur && g.field.Blocked(tgt) {
		g.Component.Receive(Event{Kind: EventProximityAlert, OtherID: SentinelID})

		return geom.Vec{}, false
	}

	return t, true
}

// Bus is a synchronous fan-out point: it is itself a Listener, and
// forwards every event to the subscribers in registration order.
type Bus struct {
	listeners []Listener
}

// NewBus returns an empty bus.
func NewBus() *Bus { return &Bus{} }

// Subscribe appends l; duplicates receive the event once per
// registration.
func (b *Bus) Subscribe(l Listener) { b.listeners = append(b.listeners, l) }

// OnNotify implements Listener by fanning the event out.
func (b *Bus) OnNotify(agentID int, ev Event) {
	for _, l := range b.listeners {
		l.OnNotify(agentID, ev)
	}
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if rng != nil {
		return lo + rng.Float64()*(hi-lo)
	}

	return lo + rand.Float64()*(hi-lo)
}
