// Package astar defines the path type and sentinel errors for the
// planner and its cache.
package astar

import (
	"errors"

	"github.com/katalvlaran/navgrid/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilOracle indicates a nil oracle was passed to FindPath.
	ErrNilOracle = errors.New("astar: oracle is nil")

	// ErrInvalidEndpoint indicates the start or goal cell is out of
	// bounds or blocked under the oracle.
	ErrInvalidEndpoint = errors.New("astar: start or goal is not a valid cell")

	// ErrNoPath indicates the open set drained without reaching the goal.
	ErrNoPath = errors.New("astar: no path between start and goal")
)

// Path is an ordered, non-empty cell sequence with first = start,
// last = goal, and successive entries adjacent under the oracle that
// produced it. Treat emitted paths as immutable.
type Path []grid.Coord

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Cost sums the step costs of p under the given cost function.
func (p Path) Cost(stepCost func(from, to grid.Coord) int) int {
	total := 0
	for i := 1; i < len(p); i++ {
		total += stepCost(p[i-1], p[i])
	}

	return total
}
