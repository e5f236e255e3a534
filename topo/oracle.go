package topo

import (
	"github.com/katalvlaran/navgrid/grid"
)

// Oracle yields the neighborhood of a cell under one topology.
// All implementations filter out-of-bounds and blocked cells, so any
// sequence of Neighbors hops stays on passable terrain.
type Oracle interface {
	// Neighbors returns the in-bounds, passable neighbors of c.
	Neighbors(c grid.Coord) []grid.Coord
	// StepCost returns the integer cost of the adjacent step from → to.
	StepCost(from, to grid.Coord) int
	// Valid reports whether c is in bounds and passable.
	Valid(c grid.Coord) bool
	// Kind identifies the topology that produced this oracle.
	Kind() Kind
}

// NewOracle constructs the oracle for kind over g.
// Returns ErrUnknownKind for tags outside the supported set.
func NewOracle(kind Kind, g *grid.Grid) (Oracle, error) {
	switch kind {
	case Cardinal4:
		return &cardinalOracle{g: g, kind: Cardinal4, offsets: cardinal4Offsets[:]}, nil
	case Cardinal8:
		return &cardinalOracle{g: g, kind: Cardinal8, offsets: cardinal8Offsets[:]}, nil
	case Hex:
		return &hexOracle{g: g}, nil
	default:
		return nil, ErrUnknownKind
	}
}

// Precomputed neighbor offsets, N first then clockwise.
var (
	cardinal4Offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	cardinal8Offsets = [8][2]int{
		{0, -1}, {1, -1}, {1, 0}, {1, 1},
		{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}

	// Flat-top hex neighbors depend on row parity under offset addressing.
	hexEvenOffsets = [6][2]int{{0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}}
	hexOddOffsets  = [6][2]int{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}}
)

// cardinalOracle serves both rectangular topologies; only the offset
// table and the diagonal cost rule differ.
type cardinalOracle struct {
	g       *grid.Grid
	kind    Kind
	offsets [][2]int
}

// Neighbors returns up to len(offsets) passable cells around c.
// Corner cutting is not prohibited under Cardinal8: the diagonal step is
// offered regardless of the flanking orthogonal cells.
// Complexity: O(d), d = neighbor count.
func (o *cardinalOracle) Neighbors(c grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, len(o.offsets))
	for _, d := range o.offsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !o.g.IsBlocked(nx, ny) {
			out = append(out, grid.Coord{X: nx, Y: ny})
		}
	}

	return out
}

// StepCost returns 10 for orthogonal steps and 14 for diagonal steps.
func (o *cardinalOracle) StepCost(from, to grid.Coord) int {
	if o.kind == Cardinal8 && from.X != to.X && from.Y != to.Y {
		return CostDiagonal
	}

	return CostOrthogonal
}

func (o *cardinalOracle) Valid(c grid.Coord) bool { return !o.g.IsBlocked(c.X, c.Y) }

func (o *cardinalOracle) Kind() Kind { return o.kind }

// hexOracle implements the flat-top, row-offset hexagonal neighborhood.
type hexOracle struct {
	g *grid.Grid
}

// Neighbors returns up to six passable cells around c, selecting the
// offset table by row parity. Complexity: O(1).
func (o *hexOracle) Neighbors(c grid.Coord) []grid.Coord {
	offsets := &hexEvenOffsets
	if c.Y&1 == 1 {
		offsets = &hexOddOffsets
	}
	out := make([]grid.Coord, 0, 6)
	for _, d := range offsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !o.g.IsBlocked(nx, ny) {
			out = append(out, grid.Coord{X: nx, Y: ny})
		}
	}

	return out
}

// StepCost is uniform on the hex lattice.
func (o *hexOracle) StepCost(from, to grid.Coord) int { return CostOrthogonal }

func (o *hexOracle) Valid(c grid.Coord) bool { return !o.g.IsBlocked(c.X, c.Y) }

func (o *hexOracle) Kind() Kind { return Hex }
