package level

import (
	"log"
	"math"
)

// Level owns one collision grid and the slope segments extracted from a
// stage's polygons. It is built once at stage load and read-only during
// simulation; a stage change builds a fresh Level rather than mutating a
// shared one, so no locking is ever needed.
type Level struct {
	Name   string
	Grid   *Grid
	Slopes []Segment

	// Gameplay markers carried through untouched for systems outside the
	// collision core.
	SpawnPoints []SpawnPoint
	DeadZones   []Rect
	Pickups     []Pickup

	Width, Height int // world units
}

// Build constructs a Level from parsed map data. When an override grid is
// supplied it fully replaces the rasterizer's output, but slopes are still
// extracted from the raw polygons: slope surfaces are always analytic,
// never read back from tiles.
func Build(data *MapData, ov *Override) *Level {
	cellSize := data.CellSize
	if ov != nil && ov.CellSize > 0 {
		cellSize = ov.CellSize
	}
	cols := int(math.Ceil(float64(data.Width) / cellSize))
	rows := int(math.Ceil(float64(data.Height) / cellSize))
	grid := NewGrid(cols, rows, cellSize)

	if ov != nil {
		ov.Apply(grid)
	} else {
		for _, poly := range data.Polygons {
			Rasterize(grid, poly)
		}
	}

	l := &Level{
		Name:        data.Name,
		Grid:        grid,
		SpawnPoints: data.SpawnPoints,
		DeadZones:   data.DeadZones,
		Pickups:     data.Pickups,
		Width:       data.Width,
		Height:      data.Height,
	}
	for _, poly := range data.Polygons {
		l.Slopes = append(l.Slopes, ExtractSlopes(poly)...)
	}
	ClearSlopeTiles(grid, l.Slopes)

	log.Printf("Built level %q: %dx%d cells at %.0f, %d polygons, %d slopes, %d spawns",
		l.Name, cols, rows, cellSize, len(data.Polygons), len(l.Slopes), len(l.SpawnPoints))

	return l
}

// Tile forwards to the grid; out-of-range queries return Solid.
func (l *Level) Tile(col, row int) int {
	return l.Grid.Tile(col, row)
}

// CellSize returns the grid's cell size in world units.
func (l *Level) CellSize() float64 {
	return l.Grid.CellSize()
}
