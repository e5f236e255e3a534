// Package world defines the coordinator's options, stack specifications,
// snapshot types, and sentinel errors.
package world

import (
	"errors"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/navgrid/agent"
	"github.com/katalvlaran/navgrid/avoid"
	"github.com/katalvlaran/navgrid/geom"
)

// Sentinel errors for world operations.
var (
	// ErrUnknownLayer indicates a behavior-stack tag outside the known set.
	ErrUnknownLayer = errors.New("world: unknown behavior layer")
	// ErrLayerUnavailable indicates a stigmergy gate requested in a
	// velocity-obstacle world.
	ErrLayerUnavailable = errors.New("world: stigmergy gate requires a stigmergy world")
	// ErrUnknownAvoidance indicates an avoidance mode outside the known set.
	ErrUnknownAvoidance = errors.New("world: unknown avoidance mode")
)

// FuelQuantum is the fuel cost of one committed move.
const FuelQuantum = 1.0

// AvoidanceMode selects the local-avoidance strategy of a world. The two
// strategies are mutually exclusive and fixed at construction.
type AvoidanceMode int

const (
	// VelocityObstacle samples candidate velocities against neighbors.
	VelocityObstacle AvoidanceMode = iota
	// Stigmergy gates moves through a shared decaying occupancy field.
	Stigmergy
)

// String returns the scenario-file spelling of the mode.
func (m AvoidanceMode) String() string {
	switch m {
	case VelocityObstacle:
		return "velocity-obstacle"
	case Stigmergy:
		return "stigmergy"
	default:
		return "unknown"
	}
}

// ParseAvoidanceMode maps a scenario-file spelling back to a mode.
func ParseAvoidanceMode(s string) (AvoidanceMode, error) {
	switch s {
	case "velocity-obstacle":
		return VelocityObstacle, nil
	case "stigmergy":
		return Stigmergy, nil
	default:
		return 0, ErrUnknownAvoidance
	}
}

// LayerKind tags one behavior layer in a stack specification.
type LayerKind int

const (
	// LayerVisualAlert flashes the agent color on contact events.
	LayerVisualAlert LayerKind = iota
	// LayerSpeedModulator scales the inner tick dt.
	LayerSpeedModulator
	// LayerTargetJitter perturbs the desired target after alerts.
	LayerTargetJitter
	// LayerStigmergyGate couples the agent to the pheromone field.
	LayerStigmergyGate
)

// LayerSpec is one entry of a stack specification. BaseMult applies to
// LayerSpeedModulator only; zero selects the default of 2.0.
type LayerSpec struct {
	Kind     LayerKind
	BaseMult float64
}

// StackSpec lists behavior layers outermost-first; the coordinator
// composes them in this order around the base agent.
type StackSpec []LayerSpec

// DefaultStack returns the canonical stack for the mode:
// VisualAlert → SpeedModulator(2.0) → TargetJitter, with a StigmergyGate
// innermost in stigmergy worlds.
func DefaultStack(mode AvoidanceMode) StackSpec {
	spec := StackSpec{
		{Kind: LayerVisualAlert},
		{Kind: LayerSpeedModulator, BaseMult: 2.0},
		{Kind: LayerTargetJitter},
	}
	if mode == Stigmergy {
		spec = append(spec, LayerSpec{Kind: LayerStigmergyGate})
	}

	return spec
}

// AgentState is one agent's row in a world snapshot.
type AgentState struct {
	ID              int         `json:"id"`
	Pos             geom.Vec    `json:"pos"`
	Color           agent.Color `json:"color"`
	PhysicalRadius  float64     `json:"physical_radius"`
	DetectionRadius float64     `json:"detection_radius"`
	Finished        bool        `json:"finished"`
}

// Snapshot is the render-facing view of a world at one instant.
type Snapshot struct {
	Elapsed    float64      `json:"elapsed"`
	Agents     []AgentState `json:"agents"`
	Obstacles  [][]bool     `json:"obstacles"`
	Pheromones [][]float64  `json:"pheromones,omitempty"`
}

// Options collects the world tunables.
type Options struct {
	Mode     AvoidanceMode
	Avoid    avoid.Options
	Field    avoid.FieldOptions
	AgentCfg agent.Config
	Rand     *rand.Rand
	Logger   zerolog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithAvoidance fixes the avoidance mode (default VelocityObstacle).
func WithAvoidance(mode AvoidanceMode) Option {
	return func(o *Options) { o.Mode = mode }
}

// WithAvoidOptions overrides the velocity-obstacle tunables.
func WithAvoidOptions(opt avoid.Options) Option {
	return func(o *Options) { o.Avoid = opt }
}

// WithFieldOptions overrides the pheromone tunables.
func WithFieldOptions(opt avoid.FieldOptions) Option {
	return func(o *Options) { o.Field = opt }
}

// WithAgentConfig sets the default configuration for spawned agents.
func WithAgentConfig(cfg agent.Config) Option {
	return func(o *Options) { o.AgentCfg = cfg }
}

// WithRand fixes the random source shared by sampling and behaviors,
// making runs reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithLogger attaches a structured logger; worlds are silent without one.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func defaultOptions() Options {
	return Options{
		Mode:     VelocityObstacle,
		Avoid:    avoid.DefaultOptions(),
		Field:    avoid.DefaultFieldOptions(),
		AgentCfg: agent.Config{},
		Logger:   zerolog.Nop(),
	}
}
