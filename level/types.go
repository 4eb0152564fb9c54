// Package level turns authored polygonal stage geometry into a discrete
// collision grid plus analytic slope segments. It is pure data plumbing with
// no engine dependencies, so both the editor and headless tests can consume
// it directly.
package level

// Point is a 2D world-space coordinate.
type Point struct {
	X, Y float64
}

// Polygon is an ordered, closed point loop describing one solid region.
// Winding direction is significant and preserved from authoring data; the
// slope extractor derives outward edge normals from it.
type Polygon struct {
	Shape  string // source shape identifier, authoring feedback only
	Points []Point
}

// Rect is an axis-aligned world-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Pickup is a collectible marker, passed through untouched for gameplay
// systems.
type Pickup struct {
	X, Y float64
	Kind string
}

// MapData holds everything parsed from one stage file. Collision polygons
// feed the rasterizer and slope extractor; the rest is carried through for
// systems outside the collision core.
type MapData struct {
	Name          string
	Width, Height int // world units
	CellSize      float64

	Polygons    []Polygon
	DeadZones   []Rect
	SpawnPoints []SpawnPoint
	Pickups     []Pickup
}
