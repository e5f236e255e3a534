// Package agent implements the per-entity state machine of a navigating
// disk agent, the composable behavior wrappers around it, and the
// synchronous event fan-out between agents and listeners.
//
// What:
//
//   - Agent follows a fixed pixel-space waypoint path, burns fuel on every
//     committed move, and terminates either Finished (last waypoint
//     reached) or frozen (fuel depleted).
//   - Behavior layers wrap an Agent behind the same Component interface
//     and may intercept ticks, desired-target queries, and events:
//     SpeedModulator, TargetJitter, VisualAlert, StigmergyGate.
//   - Bus fans events out to world-level listeners; each agent also owns
//     an ordered listener list (duplicates permitted).
//
// Events:
//
//   - Finished:       the agent consumed its last waypoint. Terminal.
//   - OutOfFuel:      fuel crossed zero; emitted exactly once, then the
//     agent freezes in place.
//   - ProximityAlert: another disk entered detection range, or the
//     stigmergy gate refused a move (OtherID == SentinelID).
//   - CollisionHit:   physical disks overlap.
//
// The composition order of the wrapper stack is part of the contract:
// the coordinator sees the outermost layer, and events delivered to it
// propagate inward, each layer reacting before delegating.
//
// Agents are not self-propelled: Tick only advances timers and waypoint
// bookkeeping. Motion happens exclusively through SetPosition, invoked by
// the command layer (package world), which keeps every move reversible.
package agent
