// Package scenario defines the YAML scenario schema consumed by the
// navsim CLI and builds configured worlds from it.
//
// A scenario names the map (dimensions, topology, obstacles), the
// avoidance mode, and the agent population (explicit tasks, generated
// lanes, or a random population). Values support ${VAR} environment
// substitution so one file can parameterize sweeps.
package scenario
