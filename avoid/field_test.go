package avoid

import (
	"errors"
	"testing"

	"github.com/katalvlaran/navgrid/grid"
)

// TestNewField_Errors rejects non-positive dimensions.
func TestNewField_Errors(t *testing.T) {
	if _, err := NewField(0, 3, DefaultFieldOptions()); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("NewField(0,3) error = %v; want ErrBadDimensions", err)
	}
}

// TestDepositSaturates caps intensity at Max regardless of dwell time.
func TestDepositSaturates(t *testing.T) {
	f, _ := NewField(4, 4, DefaultFieldOptions())
	c := grid.C(1, 1)

	// 1 s of occupancy at 60 Hz deposits 100 raw units against a cap of 10.
	for i := 0; i < 60; i++ {
		f.Deposit(c, 1.0/60)
	}
	if got := f.Intensity(c); got != 10 {
		t.Errorf("Intensity = %v; want saturated 10", got)
	}
}

// TestDecayClampsAtZero never yields negative intensity, and decays at
// the configured rate: after T seconds a cell is ≤ start − Decay·T.
func TestDecayClampsAtZero(t *testing.T) {
	opt := DefaultFieldOptions()
	f, _ := NewField(4, 4, opt)
	c := grid.C(2, 2)
	f.Deposit(c, 0.1) // 10 raw → saturates to 10

	start := f.Intensity(c)
	// 1.9 s of decay at 5/s: 10 → 0.5, the blocking threshold.
	for i := 0; i < 114; i++ {
		f.Decay(1.0 / 60)
	}
	got := f.Intensity(c)
	if got > start-opt.Decay*1.9+1e-9 {
		t.Errorf("Intensity after 1.9 s = %v; want ≤ %v", got, start-opt.Decay*1.9)
	}

	for i := 0; i < 600; i++ {
		f.Decay(1.0 / 60)
	}
	if got := f.Intensity(c); got != 0 {
		t.Errorf("Intensity after long decay = %v; want 0", got)
	}
}

// TestBlockedThreshold flips exactly above the threshold.
func TestBlockedThreshold(t *testing.T) {
	f, _ := NewField(4, 4, DefaultFieldOptions())
	c := grid.C(0, 0)

	f.Deposit(c, 0.004) // intensity 0.4, below the 0.5 threshold
	if f.Blocked(c) {
		t.Error("intensity below threshold must not block")
	}
	f.Deposit(c, 0.002) // intensity 0.6
	if !f.Blocked(c) {
		t.Error("intensity above threshold must block")
	}
}

// TestOutOfRange drops deposits and reads unblocked.
func TestOutOfRange(t *testing.T) {
	f, _ := NewField(2, 2, DefaultFieldOptions())
	f.Deposit(grid.C(5, 5), 1)
	if f.Blocked(grid.C(5, 5)) {
		t.Error("out-of-range cell reported blocked")
	}
	if f.Intensity(grid.C(-1, 0)) != 0 {
		t.Error("out-of-range intensity not zero")
	}
}

// TestClearAndSnapshot zeroes everything and copies rows.
func TestClearAndSnapshot(t *testing.T) {
	f, _ := NewField(3, 2, DefaultFieldOptions())
	f.Deposit(grid.C(1, 1), 0.05)

	snap := f.Snapshot()
	if snap[1][1] != 5 {
		t.Errorf("snapshot[1][1] = %v; want 5", snap[1][1])
	}
	snap[1][1] = 99
	if f.Intensity(grid.C(1, 1)) == 99 {
		t.Error("snapshot aliases the live field")
	}

	f.Clear()
	if f.Intensity(grid.C(1, 1)) != 0 {
		t.Error("Clear left residue")
	}
}
