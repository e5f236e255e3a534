package world

import (
	"github.com/katalvlaran/navgrid/agent"
	"github.com/katalvlaran/navgrid/grid"
)

// Scenario spawners. These reproduce the benchmark populations of the
// original system: opposing lanes crossing the map, and a random
// population of independent tasks.

// SpawnOpposingLanes fills lanes columns on each side of the map with
// agents crossing to the mirrored cell on the far side: the left group
// (blue) heads right, the right group (red) heads left. Rows whose
// endpoint cells are blocked are skipped. Returns the number spawned.
func (w *World) SpawnOpposingLanes(lanes int) int {
	width, height := w.grid.Width(), w.grid.Height()
	spawned := 0
	for k := 0; k < lanes; k++ {
		left, right := 1+k, width-2-k
		if left >= right {
			break
		}
		for y := 1; y < height-1; y++ {
			if w.grid.IsBlocked(left, y) || w.grid.IsBlocked(right, y) {
				continue
			}
			cfg := w.agentCfg
			cfg.Color = agent.Blue
			if _, err := w.SpawnAgent(grid.C(left, y), grid.C(right, y), cfg, DefaultStack(w.mode)); err == nil {
				spawned++
			}
			cfg.Color = agent.Red
			if _, err := w.SpawnAgent(grid.C(right, y), grid.C(left, y), cfg, DefaultStack(w.mode)); err == nil {
				spawned++
			}
		}
	}
	w.log.Info().Int("spawned", spawned).Int("lanes", lanes).Msg("opposing lanes ready")

	return spawned
}

// SpawnRandomAgents creates up to n agents between random passable
// start/goal pairs, retrying failed picks up to 10·n times. Pairs with
// no path are skipped rather than counted. Returns the number spawned.
func (w *World) SpawnRandomAgents(n int) int {
	spawned, attempts := 0, 0
	for spawned < n && attempts < n*10 {
		attempts++
		start, ok := w.grid.SamplePassable()
		if !ok {
			break
		}
		goal, ok := w.grid.SamplePassable()
		if !ok || start == goal {
			continue
		}
		cfg := w.agentCfg
		cfg.Color = agent.Red
		if _, err := w.SpawnAgent(start, goal, cfg, DefaultStack(w.mode)); err == nil {
			spawned++
		}
	}
	w.log.Info().Int("spawned", spawned).Int("requested", n).Msg("random agents ready")

	return spawned
}
