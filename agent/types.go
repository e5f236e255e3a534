// Package agent defines the component interface, event types, colors,
// and defaults for agents and their behavior wrappers.
package agent

import (
	"math"

	"github.com/katalvlaran/navgrid/geom"
)

// Agent defaults. Fuel varies per scenario; the rest are the physical
// constants of the simulated disks.
const (
	// DefaultMaxSpeed is the cruise speed in pixels per second.
	DefaultMaxSpeed = 150.0
	// DefaultFuel is the starting fuel budget.
	DefaultFuel = 2000.0
	// DefaultPhysicalRadius is the collision disk radius in pixels.
	DefaultPhysicalRadius = 8.0
	// DefaultDetectionRadius is the proximity-sensor radius in pixels.
	DefaultDetectionRadius = 18.0
	// WaypointTolerance is the arrival distance for waypoint advancement.
	WaypointTolerance = 10.0

	// depletedBand separates "just ran out" from "already notified":
	// the OutOfFuel event fires once while fuel sits in (depletedBand, 0],
	// after which fuel is parked at frozenFuel.
	depletedBand = -1.0
	frozenFuel   = -10.0
)

// SentinelID is the OtherID carried by ProximityAlert events that have
// no concrete counterpart, such as stigmergy-gate refusals.
const SentinelID = math.MaxInt32

// EventKind enumerates the per-agent event types.
type EventKind int

const (
	// EventFinished signals arrival at the final waypoint.
	EventFinished EventKind = iota
	// EventOutOfFuel signals fuel depletion; emitted exactly once.
	EventOutOfFuel
	// EventProximityAlert signals a detection-range contact.
	EventProximityAlert
	// EventCollisionHit signals physical disk overlap.
	EventCollisionHit
)

// Event is the record fanned out to listeners and behavior layers.
// OtherID identifies the counterpart agent for proximity and collision
// events; it is SentinelID when no counterpart exists.
type Event struct {
	Kind    EventKind
	OtherID int
}

// Listener receives agent events synchronously.
type Listener interface {
	OnNotify(agentID int, ev Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(agentID int, ev Event)

// OnNotify implements Listener.
func (f ListenerFunc) OnNotify(agentID int, ev Event) { f(agentID, ev) }

// Color is a presentational tag; it never affects motion.
type Color string

// Palette used by spawners and the VisualAlert layer.
const (
	Blue   Color = "blue"
	Red    Color = "red"
	Green  Color = "green"
	Orange Color = "orange"
	Gray   Color = "gray"
)

// Component is the uniform surface of a base agent and of every behavior
// layer wrapped around it. The coordinator only ever holds the outermost
// component of a stack.
type Component interface {
	// Tick advances internal timers and waypoint bookkeeping. It never
	// moves the agent.
	Tick(dt float64)
	// ID returns the stable agent identifier.
	ID() int
	// Position returns the current pixel-space position.
	Position() geom.Vec
	// SetPosition is the authoritative mutator, invoked by commands only.
	SetPosition(p geom.Vec)
	// Velocity returns the velocity committed by the last avoidance pass.
	Velocity() geom.Vec
	// SetVelocity records the avoidance decision for the next move.
	SetVelocity(v geom.Vec)
	// MaxSpeed returns the cruise speed cap.
	MaxSpeed() float64
	// DesiredTarget returns the position the agent wants to occupy next,
	// or ok=false when it has no wish to move this tick.
	DesiredTarget() (geom.Vec, bool)
	// Finished reports terminal arrival.
	Finished() bool
	// Fuel returns the remaining fuel, negative once depleted.
	Fuel() float64
	// ConsumeFuel deducts the per-move quantum.
	ConsumeFuel(amount float64)
	// RestoreFuel reverts a deduction (undo path).
	RestoreFuel(amount float64)
	// Color returns the presentational color.
	Color() Color
	// PhysicalRadius returns the collision disk radius.
	PhysicalRadius() float64
	// DetectionRadius returns the proximity-sensor radius.
	DetectionRadius() float64
	// AddListener appends to the agent's ordered listener list.
	AddListener(l Listener)
	// Receive dispatches an inbound event through the layer stack.
	Receive(ev Event)
}

// Config parameterizes a base agent. Zero fields take the defaults.
type Config struct {
	MaxSpeed        float64
	Fuel            float64
	PhysicalRadius  float64
	DetectionRadius float64
	Color           Color
}

func (c Config) withDefaults() Config {
	if c.MaxSpeed == 0 {
		c.MaxSpeed = DefaultMaxSpeed
	}
	if c.Fuel == 0 {
		c.Fuel = DefaultFuel
	}
	if c.PhysicalRadius == 0 {
		c.PhysicalRadius = DefaultPhysicalRadius
	}
	if c.DetectionRadius == 0 {
		c.DetectionRadius = DefaultDetectionRadius
	}
	if c.Color == "" {
		c.Color = Blue
	}

	return c
}
