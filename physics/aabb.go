package physics

import (
	cfg "github.com/chris-redfield/mega-human/config"
	"github.com/chris-redfield/mega-human/level"
)

// ResolveHorizontal moves a hitbox by dx against the tile grid and returns
// the corrected X. On a hit the leading edge snaps to the adjacent tile
// boundary, inset by SnapEpsilon so next tick's query misses the boundary.
func ResolveHorizontal(l *level.Level, x, y, w, h, dx float64) float64 {
	if dx == 0 {
		return x
	}

	leadX := x + dx
	if dx > 0 {
		leadX = x + w + dx
	}
	col := l.Grid.ColAt(leadX)

	if columnSolid(l, col, y, h) {
		return snapHorizontal(l, col, w, dx)
	}
	return x + dx
}

// columnSolid samples solidity at every tile row the hitbox spans in the
// given column, stepping by tile size top to bottom. The bottom-most row is
// checked explicitly so coverage holds when the hitbox height is not a
// multiple of the tile size.
func columnSolid(l *level.Level, col int, y, h float64) bool {
	cell := l.CellSize()
	for sy := y; sy < y+h; sy += cell {
		if l.Tile(col, l.Grid.RowAt(sy)) != level.Empty {
			return true
		}
	}
	return l.Tile(col, l.Grid.RowAt(y+h-1)) != level.Empty
}

// snapHorizontal places the leading edge against the blocking column's
// near boundary, epsilon-inset.
func snapHorizontal(l *level.Level, col int, w, dx float64) float64 {
	cell := l.CellSize()
	if dx > 0 {
		return float64(col)*cell - w - cfg.Collision.SnapEpsilon
	}
	return float64(col+1)*cell + cfg.Collision.SnapEpsilon
}

// ResolveVertical moves a hitbox by dy against the tile grid and returns
// the corrected Y plus whether the body landed on solid ground. Downward
// motion samples the bottom edge near both corners (inset by one unit);
// upward motion is symmetric against the top edge and never grounds.
func ResolveVertical(l *level.Level, x, y, w, h, dy float64) (float64, bool) {
	if dy == 0 {
		return y, false
	}

	cell := l.CellSize()
	leftCol := l.Grid.ColAt(x + cfg.Collision.EdgeSampleInset)
	rightCol := l.Grid.ColAt(x + w - cfg.Collision.EdgeSampleInset)

	if dy > 0 {
		row := l.Grid.RowAt(y + h + dy)
		if l.Tile(leftCol, row) != level.Empty || l.Tile(rightCol, row) != level.Empty {
			return float64(row)*cell - h - cfg.Collision.SnapEpsilon, true
		}
		return y + dy, false
	}

	row := l.Grid.RowAt(y + dy)
	if l.Tile(leftCol, row) != level.Empty || l.Tile(rightCol, row) != level.Empty {
		return float64(row+1)*cell + cfg.Collision.SnapEpsilon, false
	}
	return y + dy, false
}

// CheckWallContact scans the columns adjacent to the hitbox's left and right
// edges with the same row stride as horizontal resolution. It returns -1 for
// left contact, 1 for right, 0 for neither. Entity logic decides what a
// contact means; this only reports it.
func CheckWallContact(l *level.Level, x, y, w, h float64) int {
	leftCol := l.Grid.ColAt(x - 1)
	rightCol := l.Grid.ColAt(x + w + 1)
	if columnSolid(l, leftCol, y, h) {
		return -1
	}
	if columnSolid(l, rightCol, y, h) {
		return 1
	}
	return 0
}
