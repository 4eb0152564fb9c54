package level

// Rasterize marks every grid cell covered by the polygon as solid. Coverage
// is tested by point sampling: the cell center plus four points inset from
// the corners, so thin or edge-aligned shapes still register when their
// interior misses a center. A cell is solid if any sample lands inside.
//
// Stages with a hand-authored override grid skip this pass entirely; slope
// extraction still runs on the raw polygons either way.
func Rasterize(g *Grid, poly Polygon) {
	if poly.Degenerate() {
		return
	}

	cell := g.CellSize()
	minX, minY, maxX, maxY := poly.Bounds()
	c0, r0 := g.ColAt(minX), g.RowAt(minY)
	c1, r1 := g.ColAt(maxX), g.RowAt(maxY)
	inset := cell / 8

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			x := float64(c) * cell
			y := float64(r) * cell
			samples := [5]Point{
				{x + cell/2, y + cell/2},
				{x + inset, y + inset},
				{x + cell - inset, y + inset},
				{x + inset, y + cell - inset},
				{x + cell - inset, y + cell - inset},
			}
			for _, s := range samples {
				if poly.Contains(s.X, s.Y) {
					g.SetTile(c, r, Solid)
					break
				}
			}
		}
	}
}
