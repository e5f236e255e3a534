// Package avoid defines the avoidance options, defaults, and the agent
// state snapshot consumed by the velocity sampler.
package avoid

import (
	"errors"

	"github.com/katalvlaran/navgrid/geom"
)

// Sentinel errors for field construction.
var (
	// ErrBadDimensions indicates a non-positive field width or height.
	ErrBadDimensions = errors.New("avoid: field width and height must be positive")
)

// Body is the ephemeral per-agent snapshot taken by the coordinator
// before the avoidance pass; reads and writes of live agents never
// interleave within a tick.
type Body struct {
	ID       int
	Pos      geom.Vec
	Vel      geom.Vec
	Radius   float64
	MaxSpeed float64
	Pref     geom.Vec
}

// Options are the velocity-obstacle tunables. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// NeighborDist bounds the sensing range in pixels.
	NeighborDist float64
	// TimeHorizon bounds the look-ahead for impact prediction, seconds.
	TimeHorizon float64
	// RadiusMargin pads the combined disk radius.
	RadiusMargin float64
	// StaticInflation scales RadiusMargin against quasi-static neighbors.
	StaticInflation float64
	// FreezePenalty discourages a standstill while the goal is live.
	FreezePenalty float64
	// OverlapPenalty marks already-overlapping candidates inadmissible.
	OverlapPenalty float64
	// StaticImpactK and StaticImpactEps shape the time-to-impact penalty
	// K/(t+ε) against static neighbors.
	StaticImpactK   float64
	StaticImpactEps float64
	// MovingImpactK and MovingImpactEps shape the same term against
	// moving neighbors.
	MovingImpactK   float64
	MovingImpactEps float64
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{
		NeighborDist:    60,
		TimeHorizon:     2.5,
		RadiusMargin:    2,
		StaticInflation: 2.5,
		FreezePenalty:   50,
		OverlapPenalty:  1e5,
		StaticImpactK:   1e4,
		StaticImpactEps: 0.05,
		MovingImpactK:   5e3,
		MovingImpactEps: 0.1,
	}
}

// FieldOptions are the pheromone-field tunables.
type FieldOptions struct {
	// Decay is the evaporation rate per second.
	Decay float64
	// Emit is the deposit rate per second of occupancy.
	Emit float64
	// Max caps a cell's intensity.
	Max float64
	// Threshold is the intensity above which a cell reads as blocked.
	Threshold float64
}

// DefaultFieldOptions returns the reference tuning.
func DefaultFieldOptions() FieldOptions {
	return FieldOptions{
		Decay:     5,
		Emit:      100,
		Max:       10,
		Threshold: 0.5,
	}
}
