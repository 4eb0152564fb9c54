package level

import "math"

// Polygons with less signed area than this are treated as degenerate and
// skipped by rasterization and slope extraction.
const minPolygonArea = 1e-6

// SignedArea returns the polygon's shoelace area. The sign encodes winding
// direction in screen coordinates (Y grows downward); authoring tools may
// emit either direction.
func (p Polygon) SignedArea() float64 {
	var sum float64
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Degenerate reports whether the polygon has too few points or effectively
// zero area to contribute geometry.
func (p Polygon) Degenerate() bool {
	return len(p.Points) < 3 || math.Abs(p.SignedArea()) < minPolygonArea
}

// Contains tests point membership with the even-odd ray-casting rule, which
// stays correct for non-convex polygons.
func (p Polygon) Contains(x, y float64) bool {
	inside := false
	n := len(p.Points)
	j := n - 1
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[j]
		if (a.Y > y) != (b.Y > y) {
			crossX := a.X + (y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Bounds returns the polygon's axis-aligned bounding box.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p.Points[0].X, p.Points[0].Y
	maxX, maxY = minX, minY
	for _, pt := range p.Points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}
