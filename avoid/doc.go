// Package avoid implements the two mutually-exclusive local-avoidance
// strategies used by the coordinator.
//
// Velocity-obstacle sampling (SafeVelocity): per tick, each agent scores
// a fixed fan of candidate velocities around its preferred velocity and
// commits the cheapest. The penalty combines deviation from intent, a
// standstill surcharge, a hard overlap term, and a time-to-impact term
// against every neighbor inside the sensing range. Static neighbors act
// as walls: they get an inflated safety margin and a stiffer impact
// penalty so detours start earlier.
//
// Stigmergic gating (Field): no velocity-space reasoning. Agents deposit
// into a shared decaying scalar field; a saturated cell reads as blocked
// and the behavior stack's gate (agent.StigmergyGate) refuses moves into
// it for a tick.
//
// All numeric constants are tunables surfaced in Options and
// FieldOptions; the defaults reproduce the reference behavior.
package avoid
