package physics

import (
	"math"

	cfg "github.com/chris-redfield/mega-human/config"
	"github.com/chris-redfield/mega-human/level"
)

// Tile-only resolution would treat every cell under a sloped polygon as a
// hard wall and make slopes unwalkable. The slope-aware resolvers suppress
// that blocking near registered slope segments and substitute analytic
// surface snapping for vertical contact.

// relevantSlope finds the segment governing the query X, extended by one
// hitbox width past each endpoint as a transition allowance. Among
// qualifying segments it picks the one whose surface is closest to the
// feet, and discards it entirely when the feet are farther than the
// relevance cutoff: a body far above or below an unrelated slope must not
// have its wall collisions disabled.
func relevantSlope(l *level.Level, queryX, feetY, w float64) (level.Segment, float64, bool) {
	cell := l.CellSize()
	bestDist := math.Inf(1)
	var best level.Segment
	var bestY float64
	found := false

	for _, s := range l.Slopes {
		if queryX < s.X1-w || queryX > s.X2+w {
			continue
		}
		// Surface is clamped to the segment's own endpoints, not the
		// extended range.
		surfaceY := s.SurfaceY(queryX)
		dist := math.Abs(feetY - surfaceY)
		if dist < bestDist {
			best, bestY, bestDist = s, surfaceY, dist
			found = true
		}
	}

	if !found || bestDist > cfg.Collision.SlopeRelevanceTiles*cell {
		return level.Segment{}, 0, false
	}
	return best, bestY, true
}

// ResolveSlopeHorizontal runs the same leading-edge row scan as
// ResolveHorizontal, but near a relevant slope segment solid cells close to
// the surface or beneath it are ignored. The pass-through margin is one
// full hitbox height in the transition zone beyond the segment's endpoints
// (letting the body through the stacked wall tiles at a slope/flat
// junction) and one tile height over the slope body itself (absorbing the
// single row of rasterization staircase remnants at the surface).
//
// priorOnSlope is part of the resolver contract for entity movement logic;
// the scan itself derives everything from the current geometry.
func ResolveSlopeHorizontal(l *level.Level, x, y, w, h, dx float64, priorOnSlope bool) float64 {
	if dx == 0 {
		return x
	}

	cell := l.CellSize()
	leadX := x + dx
	if dx > 0 {
		leadX = x + w + dx
	}
	col := l.Grid.ColAt(leadX)

	seg, surfaceY, ok := relevantSlope(l, leadX, y+h, w)
	if !ok {
		if columnSolid(l, col, y, h) {
			return snapHorizontal(l, col, w, dx)
		}
		return x + dx
	}

	margin := cell
	if !seg.SpansX(leadX) {
		margin = h
	}

	// Solid cells within the margin of the surface, or anywhere beneath it,
	// are staircase remnants or stacked junction tiles and pass through. A
	// solid sample higher above the surface than the margin is a real wall.
	passLine := surfaceY - margin
	blocked := false
	for sy := y; sy < y+h; sy += cell {
		if sy <= passLine && l.Tile(col, l.Grid.RowAt(sy)) != level.Empty {
			blocked = true
			break
		}
	}
	if !blocked {
		sy := y + h - 1
		if sy <= passLine && l.Tile(col, l.Grid.RowAt(sy)) != level.Empty {
			blocked = true
		}
	}

	if blocked {
		return snapHorizontal(l, col, w, dx)
	}
	return x + dx
}

// ResolveSlopeVertical places the feet exactly on the analytic surface of a
// qualifying slope segment, falling back to flat tile resolution when none
// qualifies. It returns the corrected Y plus the grounded and on-slope
// flags.
//
// Two snap cases qualify a segment whose span covers the hitbox center:
// landing (moving down or stationary with the projected feet at or past the
// surface, within a bounded snap distance) and downhill keep-contact (body
// grounded last tick, moving down, surface slightly below the feet). The
// second keeps contact continuous across convex slope/flat seams where a
// naive check reports a one-tick fall.
func ResolveSlopeVertical(l *level.Level, x, y, w, h, dy float64, wasGrounded, wasOnSlope bool) (float64, bool, bool) {
	cell := l.CellSize()
	centerX := x + w/2
	feetY := y + h

	bestY := 0.0
	found := false
	for _, s := range l.Slopes {
		if !s.SpansX(centerX) {
			continue
		}
		surfaceY := s.SurfaceY(centerX)

		landing := dy >= 0 &&
			feetY+dy >= surfaceY &&
			feetY+dy-surfaceY <= cfg.Collision.SlopeSnapTiles*cell
		descending := wasGrounded && dy > 0 &&
			surfaceY >= feetY &&
			surfaceY-feetY <= cfg.Collision.SlopeDescendSnap
		if !landing && !descending {
			continue
		}

		// Prefer the lowest qualifying surface, the one closest beneath
		// the feet.
		if !found || surfaceY > bestY {
			bestY = surfaceY
			found = true
		}
	}

	if found {
		return bestY - h - cfg.Collision.SnapEpsilon, true, true
	}

	newY, grounded := ResolveVertical(l, x, y, w, h, dy)

	// Just off a slope, moving down, and the grid reports airborne: scan a
	// couple of rows below for the solid ground the analytic surface and
	// the rasterized grid disagree about at a slope-to-flat transition.
	if !grounded && wasOnSlope && dy > 0 {
		leftCol := l.Grid.ColAt(x + cfg.Collision.EdgeSampleInset)
		rightCol := l.Grid.ColAt(x + w - cfg.Collision.EdgeSampleInset)
		footRow := l.Grid.RowAt(newY + h)
		for r := footRow; r <= footRow+cfg.Collision.SlopeFallbackRows; r++ {
			if l.Tile(leftCol, r) != level.Empty || l.Tile(rightCol, r) != level.Empty {
				return float64(r)*cell - h - cfg.Collision.SnapEpsilon, true, false
			}
		}
	}

	return newY, grounded, false
}
