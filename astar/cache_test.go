package astar

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/navgrid/grid"
)

// TestCache_Memoizes computes once and serves the copy afterwards.
func TestCache_Memoizes(t *testing.T) {
	c := NewCache()
	calls := 0
	compute := func() (Path, error) {
		calls++

		return Path{grid.C(0, 0), grid.C(1, 0)}, nil
	}

	first, err := c.GetOrCompute(grid.C(0, 0), grid.C(1, 0), compute)
	if err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	second, err := c.GetOrCompute(grid.C(0, 0), grid.C(1, 0), compute)
	if err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	if calls != 1 {
		t.Errorf("compute calls = %d; want 1", calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached path %v differs from original %v", second, first)
	}

	// Mutating a returned path must not poison the store.
	second[0] = grid.C(9, 9)
	third, _ := c.GetOrCompute(grid.C(0, 0), grid.C(1, 0), compute)
	if third[0] != grid.C(0, 0) {
		t.Error("cache returned aliased storage")
	}
}

// TestCache_NegativeNotCached retries failed computations.
func TestCache_NegativeNotCached(t *testing.T) {
	c := NewCache()
	calls := 0
	failing := func() (Path, error) {
		calls++

		return nil, ErrNoPath
	}

	for i := 0; i < 2; i++ {
		if _, err := c.GetOrCompute(grid.C(0, 0), grid.C(5, 5), failing); !errors.Is(err, ErrNoPath) {
			t.Fatalf("error = %v; want ErrNoPath", err)
		}
	}
	if calls != 2 {
		t.Errorf("compute calls = %d; want 2 (failures are not cached)", calls)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d; want 0", c.Len())
	}
}

// TestCache_ClearReproduces re-runs the computation and yields an
// identical path after Clear.
func TestCache_ClearReproduces(t *testing.T) {
	c := NewCache()
	compute := func() (Path, error) {
		return Path{grid.C(2, 2), grid.C(3, 2), grid.C(4, 2)}, nil
	}

	before, _ := c.GetOrCompute(grid.C(2, 2), grid.C(4, 2), compute)
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len after Clear = %d; want 0", c.Len())
	}
	after, _ := c.GetOrCompute(grid.C(2, 2), grid.C(4, 2), compute)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("post-clear path %v; want %v", after, before)
	}
}
