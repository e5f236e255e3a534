package topo

import (
	"math"

	"github.com/katalvlaran/navgrid/geom"
	"github.com/katalvlaran/navgrid/grid"
)

// CellCenter projects a cell address to the pixel-space center of that
// cell under kind. Square cells use axis-aligned centers; hexagons use
// the flat-top offset formula where odd rows shift half a hex width.
// Complexity: O(1).
func CellCenter(kind Kind, c grid.Coord) geom.Vec {
	if kind == Hex {
		offsetX := 0.0
		if c.Y&1 == 1 {
			offsetX = HexWidth / 2
		}

		return geom.V(
			float64(c.X)*HexWidth+offsetX+HexWidth/2,
			float64(c.Y)*HexVerticalSpacing+HexRadius,
		)
	}

	return geom.V(
		float64(c.X)*CellSize+CellSize/2,
		float64(c.Y)*CellSize+CellSize/2,
	)
}

// PixelToCell inverts CellCenter: it returns the cell whose center is
// nearest to p. Square cells floor-divide; hexagons refine a rounded
// estimate by scanning the 3×3 block of candidate centers around it,
// which is exact for points inside the tiling.
// Complexity: O(1).
func PixelToCell(kind Kind, p geom.Vec) grid.Coord {
	if kind != Hex {
		return grid.Coord{
			X: int(math.Floor(p.X / CellSize)),
			Y: int(math.Floor(p.Y / CellSize)),
		}
	}

	rowEst := int(math.Round(p.Y / HexVerticalSpacing))
	colEst := int(math.Round((p.X-HexWidth/2)/HexWidth - 0.5*float64(rowEst&1)))

	best := grid.Coord{X: max(colEst, 0), Y: max(rowEst, 0)}
	bestDist := math.MaxFloat64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cand := grid.Coord{X: max(colEst+dx, 0), Y: max(rowEst+dy, 0)}
			if d := CellCenter(Hex, cand).DistSq(p); d < bestDist {
				bestDist = d
				best = cand
			}
		}
	}

	return best
}

// ProjectPath maps a cell path through CellCenter, yielding the waypoint
// sequence agents steer along. Complexity: O(n).
func ProjectPath(kind Kind, cells []grid.Coord) []geom.Vec {
	out := make([]geom.Vec, len(cells))
	for i, c := range cells {
		out[i] = CellCenter(kind, c)
	}

	return out
}
