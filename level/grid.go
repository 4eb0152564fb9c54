package level

import "math"

// Solidity flags stored in the collision grid. Zero is empty, anything
// non-zero is solid.
const (
	Empty = 0
	Solid = 1
)

// Grid is a fixed-cell-size 2D solidity store. Any query outside its bounds
// returns solid, so the world carries an implicit solid boundary and callers
// never need a range check.
type Grid struct {
	cols, rows int
	cellSize   float64
	cells      []int
}

// NewGrid returns an empty grid. Cell size is a per-level parameter: a stage
// with precision-sensitive hand-authored collision can opt into a finer grid.
func NewGrid(cols, rows int, cellSize float64) *Grid {
	return &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		cells:    make([]int, cols*rows),
	}
}

// Tile returns the solidity flag at (col, row). Out-of-range coordinates,
// negative or past the grid extents, return Solid.
func (g *Grid) Tile(col, row int) int {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return Solid
	}
	return g.cells[row*g.cols+col]
}

// SetTile stores a solidity flag. Out-of-range coordinates are a no-op.
// Only level building and editor tooling write tiles; during simulation the
// grid is read-only.
func (g *Grid) SetTile(col, row, value int) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = value
}

func (g *Grid) Cols() int { return g.cols }

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) CellSize() float64 { return g.cellSize }

// ColAt returns the grid column containing world coordinate x.
func (g *Grid) ColAt(x float64) int {
	return int(math.Floor(x / g.cellSize))
}

// RowAt returns the grid row containing world coordinate y.
func (g *Grid) RowAt(y float64) int {
	return int(math.Floor(y / g.cellSize))
}
