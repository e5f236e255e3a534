// Package navgrid is a collision-aware multi-agent navigation toolkit
// for 2D tiled maps in Go.
//
// 🚀 What is navgrid?
//
//	A small set of packages that together drive a population
//	of holonomic disk agents along planned paths:
//
//	  • grid/  — rectangular tile store: passable/blocked cells, sampling
//	  • topo/  — pluggable neighborhoods: 4-cardinal, 8-cardinal, hex offset
//	  • astar/ — A* planning over any topology + a cached path store
//	  • agent/ — agent state machines, behavior wrappers, event fan-out
//	  • avoid/ — local avoidance: velocity sampling or pheromone fields
//	  • world/ — the fixed-timestep coordinator, reversible move commands
//
// ✨ Why choose navgrid?
//
//   - Topology-agnostic   — one planner, three interchangeable neighborhoods
//   - Reversible          — every agent mutation is a command with an undo
//   - Observable          — synchronous per-agent events, world snapshots
//   - Pure Go core        — the simulation loop never touches I/O
//
// The cmd/navsim binary runs scenarios headlessly, records benchmark CSVs,
// and streams world snapshots over a websocket for external renderers.
//
// Dive into DESIGN.md for the architecture notes and package docs for the
// per-component contracts.
package navgrid
