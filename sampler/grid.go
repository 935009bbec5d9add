package sampler

import (
	"math"

	"github.com/katalvlaran/quadedge/point"
)

// background is the acceleration grid behind Bridson's algorithm: the
// plane is partitioned into cells of side cellSize = r/sqrt(2), sized so
// that a cell holds at most one accepted point. Each cell stores the
// index into the caller's accumulated result slice, or -1 if empty.
//
// This generalizes gridgraph.GridGraph's row-major int grid: gridgraph
// stores a land/water classification per cell and exposes 4/8-connected
// neighbor offsets over it, whereas background stores a point-index
// per cell and exposes a neighborhood *query* (points within r of a
// candidate) rather than a fixed neighbor-offset table, since Bridson's
// algorithm needs a variable-radius search instead of fixed adjacency.
type background struct {
	cellSize   float64
	cols, rows int
	originX    float64
	originY    float64
	cells      []int // row-major, length cols*rows, -1 means empty
}

const emptyCell = -1

func newBackground(r float64, originX, originY, length, width float64) *background {
	cellSize := r / math.Sqrt2
	cols := int(math.Ceil(length/cellSize)) + 1
	rows := int(math.Ceil(width/cellSize)) + 1
	cells := make([]int, cols*rows)
	for i := range cells {
		cells[i] = emptyCell
	}
	return &background{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		originX:  originX,
		originY:  originY,
		cells:    cells,
	}
}

func (g *background) cellOf(p point.Point) (cx, cy int) {
	cx = int((p.X - g.originX) / g.cellSize)
	cy = int((p.Y - g.originY) / g.cellSize)
	return cx, cy
}

func (g *background) inBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.cols && cy >= 0 && cy < g.rows
}

func (g *background) at(cx, cy int) int {
	return g.cells[cy*g.cols+cx]
}

func (g *background) set(p point.Point, idx int) {
	cx, cy := g.cellOf(p)
	g.cells[cy*g.cols+cx] = idx
}

// hasNeighborWithin reports whether any previously accepted point
// (looked up via resultOf) lies within r of p, searching only the
// cells that could possibly contain such a point.
func (g *background) hasNeighborWithin(p point.Point, r float64, resultOf func(idx int) point.Point) bool {
	cx, cy := g.cellOf(p)
	span := int(math.Ceil(r / g.cellSize))
	for dy := -span; dy <= span; dy++ {
		for dx := -span; dx <= span; dx++ {
			nx, ny := cx+dx, cy+dy
			if !g.inBounds(nx, ny) {
				continue
			}
			idx := g.at(nx, ny)
			if idx == emptyCell {
				continue
			}
			if point.Distance(p, resultOf(idx)) < r {
				return true
			}
		}
	}
	return false
}
