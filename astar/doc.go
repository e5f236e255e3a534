// Package astar implements A* shortest-path search over a topology
// oracle, plus the memoizing path cache shared by a world.
//
// A* explores cells in order of f = g + h, where g is the accumulated
// step cost and h the Manhattan distance to the goal scaled to the
// orthogonal step cost (10). The heuristic overestimates on Cardinal8
// diagonals and on hex axes, so search there is complete but not
// guaranteed optimal; this matches the system the package reimplements
// and is a documented limitation — an octile or hex-distance heuristic
// is a drop-in improvement.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with V = W×H cells, E = neighbor pairs.
//   - Space: O(V) for the g-cost and came-from maps plus the open heap
//     under lazy decrease-key.
//
// Errors:
//
//   - ErrNilOracle:       no oracle supplied.
//   - ErrInvalidEndpoint: start or goal is out of bounds or blocked.
//   - ErrNoPath:          the open set drained without reaching the goal.
//
// The Cache memoizes positive results keyed by (start, goal); failed
// searches are never stored, so a later map edit can succeed without an
// explicit invalidation. Any grid or topology mutation must Clear it.
package astar
