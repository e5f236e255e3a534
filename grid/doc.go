// Package grid implements the rectangular tile store underlying every
// navgrid simulation: a dense W×H field of passable/blocked cells.
//
// What:
//
//   - Grid holds a fixed-size cell field; dimensions never change after New.
//   - Out-of-range addresses always read as Blocked, so path search needs
//     no separate boundary handling.
//   - SamplePassable draws a uniformly random passable cell with a bounded
//     number of attempts, for scenario and benchmark seeding.
//
// Why:
//
//   - Navigation maps: obstacles drawn by an editor or a scenario file.
//   - Benchmark grids: Scatter seeds obstacles at a target density.
//
// Errors:
//
//   - ErrBadDimensions: requested width or height is not positive.
//   - ErrOutOfBounds: a write addressed a cell outside the grid.
//
// Grid is not safe for concurrent mutation; the coordinator owns it for
// the lifetime of a run (see package world).
package grid
