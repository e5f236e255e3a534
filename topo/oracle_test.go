package topo

import (
	"errors"
	"testing"

	"github.com/katalvlaran/navgrid/grid"
)

func mustGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}

	return g
}

func mustOracle(t *testing.T, kind Kind, g *grid.Grid) Oracle {
	t.Helper()
	o, err := NewOracle(kind, g)
	if err != nil {
		t.Fatalf("NewOracle(%v): %v", kind, err)
	}

	return o
}

func coordSet(cs []grid.Coord) map[grid.Coord]bool {
	m := make(map[grid.Coord]bool, len(cs))
	for _, c := range cs {
		m[c] = true
	}

	return m
}

// TestNewOracle_Unknown rejects tags outside the supported set.
func TestNewOracle_Unknown(t *testing.T) {
	if _, err := NewOracle(Kind(42), mustGrid(t, 2, 2)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("NewOracle(42) error = %v; want ErrUnknownKind", err)
	}
}

// TestCardinal4_Neighbors checks the interior neighbor set and boundary clipping.
func TestCardinal4_Neighbors(t *testing.T) {
	g := mustGrid(t, 5, 5)
	o := mustOracle(t, Cardinal4, g)

	got := coordSet(o.Neighbors(grid.C(2, 2)))
	want := coordSet([]grid.Coord{{X: 2, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 2}})
	if len(got) != 4 {
		t.Fatalf("interior neighbor count = %d; want 4", len(got))
	}
	for c := range want {
		if !got[c] {
			t.Errorf("missing neighbor %v", c)
		}
	}

	// Corner cell keeps only the two in-bounds neighbors.
	if n := o.Neighbors(grid.C(0, 0)); len(n) != 2 {
		t.Errorf("corner neighbor count = %d; want 2", len(n))
	}
}

// TestCardinal4_BlockedFiltered drops blocked neighbors.
func TestCardinal4_BlockedFiltered(t *testing.T) {
	g := mustGrid(t, 3, 3)
	_ = g.Set(1, 0, grid.Blocked)
	o := mustOracle(t, Cardinal4, g)

	got := coordSet(o.Neighbors(grid.C(1, 1)))
	if got[grid.C(1, 0)] {
		t.Error("blocked cell (1,0) offered as neighbor")
	}
	if len(got) != 3 {
		t.Errorf("neighbor count = %d; want 3", len(got))
	}
}

// TestCardinal8_CostsAndCorners checks diagonal membership, the 10/14 cost
// split, and that corner cutting stays permitted when both flanking
// orthogonals are blocked.
func TestCardinal8_CostsAndCorners(t *testing.T) {
	g := mustGrid(t, 3, 3)
	o := mustOracle(t, Cardinal8, g)

	got := coordSet(o.Neighbors(grid.C(1, 1)))
	if len(got) != 8 {
		t.Fatalf("interior neighbor count = %d; want 8", len(got))
	}

	if c := o.StepCost(grid.C(1, 1), grid.C(2, 1)); c != CostOrthogonal {
		t.Errorf("orthogonal cost = %d; want %d", c, CostOrthogonal)
	}
	if c := o.StepCost(grid.C(1, 1), grid.C(2, 2)); c != CostDiagonal {
		t.Errorf("diagonal cost = %d; want %d", c, CostDiagonal)
	}

	// Block both orthogonal flanks of the (1,1)→(2,2) diagonal.
	_ = g.Set(2, 1, grid.Blocked)
	_ = g.Set(1, 2, grid.Blocked)
	got = coordSet(o.Neighbors(grid.C(1, 1)))
	if !got[grid.C(2, 2)] {
		t.Error("corner-cut diagonal (2,2) dropped; the step must stay offered")
	}
}

// TestHex_ParityNeighborSets verifies the exact parity-dependent offsets
// and that interior cells have exactly six neighbors.
func TestHex_ParityNeighborSets(t *testing.T) {
	g := mustGrid(t, 8, 8)
	o := mustOracle(t, Hex, g)

	// Even row: N, NE(+1,0), SE(+1,+1), S, SW(−1,+1), NW(−1,0).
	even := coordSet(o.Neighbors(grid.C(3, 4)))
	wantEven := []grid.Coord{{X: 3, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 4}}
	if len(even) != 6 {
		t.Fatalf("even-row neighbor count = %d; want 6", len(even))
	}
	for _, c := range wantEven {
		if !even[c] {
			t.Errorf("even row missing neighbor %v", c)
		}
	}

	// Odd row: N, NE(+1,−1), SE(+1,0), S, SW(−1,0), NW(−1,−1).
	odd := coordSet(o.Neighbors(grid.C(3, 5)))
	wantOdd := []grid.Coord{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 5}, {X: 3, Y: 6}, {X: 2, Y: 5}, {X: 2, Y: 4}}
	if len(odd) != 6 {
		t.Fatalf("odd-row neighbor count = %d; want 6", len(odd))
	}
	for _, c := range wantOdd {
		if !odd[c] {
			t.Errorf("odd row missing neighbor %v", c)
		}
	}

	if c := o.StepCost(grid.C(3, 4), grid.C(4, 4)); c != CostOrthogonal {
		t.Errorf("hex cost = %d; want %d", c, CostOrthogonal)
	}
}

// TestValid reflects bounds and obstacles.
func TestValid(t *testing.T) {
	g := mustGrid(t, 3, 3)
	_ = g.Set(1, 1, grid.Blocked)
	for _, kind := range []Kind{Cardinal4, Cardinal8, Hex} {
		o := mustOracle(t, kind, g)
		if o.Valid(grid.C(1, 1)) {
			t.Errorf("%v: Valid(blocked) = true", kind)
		}
		if o.Valid(grid.C(-1, 0)) {
			t.Errorf("%v: Valid(out of range) = true", kind)
		}
		if !o.Valid(grid.C(0, 0)) {
			t.Errorf("%v: Valid(open) = false", kind)
		}
	}
}

// TestParseKind round-trips the scenario spellings.
func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{Cardinal4, Cardinal8, Hex} {
		parsed, err := ParseKind(kind.String())
		if err != nil || parsed != kind {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", kind.String(), parsed, err, kind)
		}
	}
	if _, err := ParseKind("triangular"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(triangular) error = %v; want ErrUnknownKind", err)
	}
}
