package astar

import (
	"container/heap"

	"github.com/katalvlaran/navgrid/grid"
	"github.com/katalvlaran/navgrid/topo"
)

// FindPath computes a cheapest-found path from start to goal over the
// oracle's neighborhood.
//
// Preconditions and validation (in order):
//  1. oracle must be non-nil (ErrNilOracle).
//  2. start and goal must be valid under the oracle (ErrInvalidEndpoint).
//
// start == goal returns the single-cell path [start].
//
// Tie-break: lower f first, then lexicographic on (x, y), so equal-cost
// frontiers expand deterministically.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func FindPath(oracle topo.Oracle, start, goal grid.Coord) (Path, error) {
	// 1) Validate the oracle.
	if oracle == nil {
		return nil, ErrNilOracle
	}

	// 2) Validate both endpoints before touching the heap.
	if !oracle.Valid(start) || !oracle.Valid(goal) {
		return nil, ErrInvalidEndpoint
	}

	// 3) Trivial query: a path is inclusive of both endpoints.
	if start == goal {
		return Path{start}, nil
	}

	// 4) Prepare search state. gCost holds the best-known cost from
	//    start; cameFrom records the predecessor for reconstruction.
	gCost := map[grid.Coord]int{start: 0}
	cameFrom := make(map[grid.Coord]grid.Coord)
	closed := make(map[grid.Coord]bool)

	// 5) Seed the open heap with the start cell.
	open := make(nodeHeap, 0, 64)
	heap.Init(&open)
	heap.Push(&open, &node{cell: start, f: heuristic(start, goal)})

	// 6) Main loop: expand the cheapest frontier cell, relax neighbors.
	//    Lazy decrease-key: stale heap entries are skipped via closed.
	for open.Len() > 0 {
		cur := heap.Pop(&open).(*node)
		if closed[cur.cell] {
			continue
		}
		closed[cur.cell] = true

		if cur.cell == goal {
			return reconstruct(cameFrom, goal), nil
		}

		for _, nb := range oracle.Neighbors(cur.cell) {
			if closed[nb] {
				continue
			}
			tentative := gCost[cur.cell] + oracle.StepCost(cur.cell, nb)
			if known, ok := gCost[nb]; ok && tentative >= known {
				continue
			}
			gCost[nb] = tentative
			cameFrom[nb] = cur.cell
			heap.Push(&open, &node{
				cell: nb,
				g:    tentative,
				f:    tentative + heuristic(nb, goal),
			})
		}
	}

	// 7) Open set drained without reaching the goal.
	return nil, ErrNoPath
}

// heuristic is the Manhattan distance scaled to the orthogonal step
// cost. It overestimates on Cardinal8 diagonals and on hex axes; see the
// package doc for the consequences.
func heuristic(a, b grid.Coord) int {
	return topo.CostOrthogonal * (abs(a.X-b.X) + abs(a.Y-b.Y))
}

// reconstruct walks cameFrom from goal back to start and reverses.
func reconstruct(cameFrom map[grid.Coord]grid.Coord, goal grid.Coord) Path {
	path := Path{goal}
	cur := goal
	for {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// node is an open-set entry. f carries the priority; g is kept for
// debugging parity with the cost map.
type node struct {
	cell grid.Coord
	f, g int
}

// nodeHeap is a min-heap ordered by f, then (x, y) lexicographically.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].cell.X != h[j].cell.X {
		return h[i].cell.X < h[j].cell.X
	}

	return h[i].cell.Y < h[j].cell.Y
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
