package agent

import "github.com/katalvlaran/navgrid/geom"

// Agent is the base component: a holonomic disk following a fixed
// pixel-space waypoint path. All mutation goes through SetPosition and
// the fuel accessors; Tick only observes and advances bookkeeping.
type Agent struct {
	id        int
	pos       geom.Vec
	velocity  geom.Vec
	path      []geom.Vec
	waypoint  int
	maxSpeed  float64
	fuel      float64
	color     Color
	physR     float64
	detR      float64
	finished  bool
	listeners []Listener
}

// New constructs a base agent positioned on the first path vertex.
// The path must be non-empty; it is the projected output of a planner
// query and is not copied.
func New(id int, path []geom.Vec, cfg Config) *Agent {
	cfg = cfg.withDefaults()

	a := &Agent{
		id:       id,
		path:     path,
		maxSpeed: cfg.MaxSpeed,
		fuel:     cfg.Fuel,
		color:    cfg.Color,
		physR:    cfg.PhysicalRadius,
		detR:     cfg.DetectionRadius,
	}
	if len(path) > 0 {
		a.pos = path[0]
	}

	return a
}

// Tick advances the waypoint state machine.
//
// Fuel gate: once fuel crosses zero the agent emits OutOfFuel exactly
// once, parks fuel in the frozen band, and pins velocity to zero on
// every subsequent tick. A frozen agent never advances waypoints.
//
// Arrival: when the current waypoint is within WaypointTolerance the
// index advances; consuming the final waypoint flips Finished and emits
// the Finished event.
func (a *Agent) Tick(dt float64) {
	if a.fuel <= 0 {
		if a.fuel > depletedBand {
			a.notify(Event{Kind: EventOutOfFuel})
			a.fuel = frozenFuel
		}
		a.velocity = geom.Vec{}

		return
	}

	if a.waypoint < len(a.path) {
		if a.pos.Dist(a.path[a.waypoint]) < WaypointTolerance {
			a.waypoint++
			if a.waypoint >= len(a.path) {
				a.finished = true
				a.velocity = geom.Vec{}
				a.notify(Event{Kind: EventFinished})
			}
		}
	}
}

// DesiredTarget returns the current waypoint, or ok=false once the agent
// is finished or depleted.
func (a *Agent) DesiredTarget() (geom.Vec, bool) {
	if a.finished || a.fuel <= 0 || a.waypoint >= len(a.path) {
		return geom.Vec{}, false
	}

	return a.path[a.waypoint], true
}

// ID returns the stable agent identifier.
func (a *Agent) ID() int { return a.id }

// Position returns the current pixel-space position.
func (a *Agent) Position() geom.Vec { return a.pos }

// SetPosition writes the position. Commands are the only caller.
func (a *Agent) SetPosition(p geom.Vec) { a.pos = p }

// Velocity returns the last committed velocity.
func (a *Agent) Velocity() geom.Vec { return a.velocity }

// SetVelocity records the avoidance decision.
func (a *Agent) SetVelocity(v geom.Vec) { a.velocity = v }

// MaxSpeed returns the cruise speed cap.
func (a *Agent) MaxSpeed() float64 { return a.maxSpeed }

// Finished reports terminal arrival.
func (a *Agent) Finished() bool { return a.finished }

// Fuel returns the remaining fuel.
func (a *Agent) Fuel() float64 { return a.fuel }

// ConsumeFuel deducts a move's fuel quantum.
func (a *Agent) ConsumeFuel(amount float64) { a.fuel -= amount }

// RestoreFuel reverts a deduction.
func (a *Agent) RestoreFuel(amount float64) { a.fuel += amount }

// Color returns Gray once depleted, the configured color otherwise.
func (a *Agent) Color() Color {
	if a.fuel <= 0 {
		return Gray
	}

	return a.color
}

// PhysicalRadius returns the collision disk radius.
func (a *Agent) PhysicalRadius() float64 { return a.physR }

// DetectionRadius returns the proximity-sensor radius.
func (a *Agent) DetectionRadius() float64 { return a.detR }

// AddListener appends l to the ordered listener list. Duplicates are
// permitted and receive the event once per registration.
func (a *Agent) AddListener(l Listener) { a.listeners = append(a.listeners, l) }

// Receive dispatches an inbound event to the listeners. The base agent
// has no reactive behavior of its own.
func (a *Agent) Receive(ev Event) { a.notify(ev) }

// Waypoint reports the current waypoint index, for snapshots and tests.
func (a *Agent) Waypoint() int { return a.waypoint }

func (a *Agent) notify(ev Event) {
	for _, l := range a.listeners {
		l.OnNotify(a.id, ev)
	}
}
