package level

import "math"

// Segment is an analytic ground line derived from one polygon edge, valid
// only for X within [X1, X2]. It gives sub-cell-precision ground height
// where the tile grid would produce a staircase.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Slope  float64
	Shape  string // source shape identifier, authoring feedback only
}

// NewSegment builds a segment from an edge, swapping endpoints so that
// X1 < X2 always holds.
func NewSegment(x1, y1, x2, y2 float64, shape string) Segment {
	if x2 < x1 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	return Segment{
		X1: x1, Y1: y1,
		X2: x2, Y2: y2,
		Slope: (y2 - y1) / (x2 - x1),
		Shape: shape,
	}
}

// SurfaceY returns the surface height at x, clamped to the segment's span so
// it never extrapolates past an endpoint.
func (s Segment) SurfaceY(x float64) float64 {
	if x < s.X1 {
		x = s.X1
	}
	if x > s.X2 {
		x = s.X2
	}
	return s.Y1 + s.Slope*(x-s.X1)
}

// SpansX reports whether x lies within the segment's valid range.
func (s Segment) SpansX(x float64) bool {
	return x >= s.X1 && x <= s.X2
}

// ExtractSlopes classifies the polygon's edges and returns those that
// function as walkable ground. An edge qualifies when its outward normal,
// derived from the winding direction, points upward and is more vertical
// than horizontal; that excludes walls and ceilings. Axis-aligned edges are
// never slopes, and degenerate polygons yield nothing.
func ExtractSlopes(poly Polygon) []Segment {
	if poly.Degenerate() {
		return nil
	}

	clockwise := poly.SignedArea() > 0
	var segs []Segment
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[(i+1)%n]
		dx := b.X - a.X
		dy := b.Y - a.Y
		if dx == 0 || dy == 0 {
			continue
		}

		// Outward normal implied by the winding direction.
		nx, ny := dy, -dx
		if !clockwise {
			nx, ny = -dy, dx
		}
		if ny >= 0 || math.Abs(ny) < math.Abs(nx) {
			continue
		}

		segs = append(segs, NewSegment(a.X, a.Y, b.X, b.Y, poly.Shape))
	}
	return segs
}

// ClearSlopeTiles removes the band of rasterized cells directly above each
// segment's surface, one cleared row per spanned column at that column's
// center X. Without this the staircase remnants left by rasterization block
// movement along the slope.
//
// The surface row itself is left in place: clearing it would also delete
// legitimate ground tiles at the segment's endpoints where slope and flat
// ground meet. The resolver's margin logic handles that row at query time.
func ClearSlopeTiles(g *Grid, segs []Segment) {
	cell := g.CellSize()
	for _, s := range segs {
		c0 := g.ColAt(s.X1)
		c1 := g.ColAt(s.X2)
		for c := c0; c <= c1; c++ {
			centerX := (float64(c) + 0.5) * cell
			surfaceRow := g.RowAt(s.SurfaceY(centerX))
			g.SetTile(c, surfaceRow-1, Empty)
		}
	}
}
