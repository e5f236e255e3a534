// Package topo provides the pluggable neighborhood oracles and pixel
// projections for the three supported cell topologies.
//
// What:
//
//   - Oracle yields the in-bounds, passable neighbors of a cell and the
//     integer step cost between adjacent cells.
//   - Cardinal4: N/S/E/W, cost 10 uniform.
//   - Cardinal8: cardinals plus diagonals, cost 10 orthogonal / 14 diagonal.
//     Corner cutting is permitted: a diagonal step is offered even when
//     both flanking orthogonal cells are blocked.
//   - Hex: flat-top hexagons addressed by row-offset coordinates; the
//     neighbor set depends on row parity, cost 10 uniform.
//   - CellCenter / PixelToCell project between cell addresses and the
//     continuous pixel plane (square cells 20 px, hex radius 15 px).
//
// Errors:
//
//   - ErrUnknownKind: a Kind outside {Cardinal4, Cardinal8, Hex}.
//
// Oracles hold a reference to the backing grid and observe its mutations;
// they carry no state of their own beyond the precomputed offset tables.
package topo
