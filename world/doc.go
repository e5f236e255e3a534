// Package world hosts the coordinator: the fixed-timestep loop that
// drives every agent through planning, local avoidance, reversible move
// commands, and event delivery. World is the only surface the rest of an
// application sees.
//
// Tick order, fixed and part of the contract:
//
//  1. Decay the pheromone field (stigmergy worlds only).
//  2. Tick every agent through its outermost behavior layer.
//  3. Snapshot all agent states for the avoidance pass.
//  4. Select a safe velocity per non-finished agent (or consult the
//     stigmergy gate) and enqueue one Move command per willing agent.
//  5. Flush the command queue — the only place positions change.
//  6. Evaluate collision and proximity predicates and deliver events.
//
// All agent-position writes happen in agent-iteration order after every
// read of the same tick; events emitted in a tick are delivered before
// the tick returns. Undo pops exactly one Move and never crosses a tick
// boundary.
//
// The package also carries the world-level scenario spawners and the CSV
// benchmark recorders of the original system.
package world
