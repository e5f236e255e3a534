package avoid

import (
	"sync"

	"github.com/katalvlaran/navgrid/grid"
)

// Field is the shared pheromone store of the stigmergy variant: a W×H
// scalar grid of non-negative intensities in [0, Max]. It is guarded by
// a mutex so a future background decay worker can share it; inside the
// single-threaded tick loop the lock is uncontended.
type Field struct {
	mu    sync.Mutex
	w, h  int
	cells []float64
	opt   FieldOptions
}

// NewField constructs an empty field.
// Returns ErrBadDimensions when width or height is not positive.
func NewField(width, height int, opt FieldOptions) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	return &Field{
		w:     width,
		h:     height,
		cells: make([]float64, width*height),
		opt:   opt,
	}, nil
}

func (f *Field) inBounds(c grid.Coord) bool {
	return c.X >= 0 && c.X < f.w && c.Y >= 0 && c.Y < f.h
}

// Deposit adds Emit·dt into the cell, saturating at Max. Out-of-range
// deposits are dropped.
func (f *Field) Deposit(c grid.Coord, dt float64) {
	if !f.inBounds(c) {
		return
	}
	f.mu.Lock()
	i := c.Y*f.w + c.X
	f.cells[i] = min(f.cells[i]+f.opt.Emit*dt, f.opt.Max)
	f.mu.Unlock()
}

// Decay evaporates every cell by Decay·dt, clamping at zero.
// Complexity: O(W×H).
func (f *Field) Decay(dt float64) {
	f.mu.Lock()
	for i, v := range f.cells {
		if v > 0 {
			f.cells[i] = max(v-f.opt.Decay*dt, 0)
		}
	}
	f.mu.Unlock()
}

// Blocked reports whether the cell's intensity exceeds the threshold.
// Out-of-range cells read as unblocked; the grid's own boundary rule
// governs there.
func (f *Field) Blocked(c grid.Coord) bool {
	if !f.inBounds(c) {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cells[c.Y*f.w+c.X] > f.opt.Threshold
}

// Intensity reads one cell, zero when out of range.
func (f *Field) Intensity(c grid.Coord) float64 {
	if !f.inBounds(c) {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cells[c.Y*f.w+c.X]
}

// Snapshot returns a row-major copy for rendering and persistence.
// Complexity: O(W×H).
func (f *Field) Snapshot() [][]float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	rows := make([][]float64, f.h)
	for y := 0; y < f.h; y++ {
		rows[y] = make([]float64, f.w)
		copy(rows[y], f.cells[y*f.w:(y+1)*f.w])
	}

	return rows
}

// Clear zeroes the whole field.
func (f *Field) Clear() {
	f.mu.Lock()
	for i := range f.cells {
		f.cells[i] = 0
	}
	f.mu.Unlock()
}
