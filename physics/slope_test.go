package physics

import (
	"math"
	"testing"

	"github.com/chris-redfield/mega-human/level"
)

// rampLevel builds a 160x128 stage from polygons: a 45 degree ramp dropping
// from (0,48) to (64,112), then flat floor at y=112 out to the right edge.
func rampLevel() *level.Level {
	data := &level.MapData{
		Name:     "ramp",
		Width:    160,
		Height:   128,
		CellSize: 16,
		Polygons: []level.Polygon{
			{Shape: "ramp", Points: []level.Point{{X: 0, Y: 48}, {X: 64, Y: 112}, {X: 64, Y: 128}, {X: 0, Y: 128}}},
			{Shape: "floor", Points: []level.Point{{X: 64, Y: 112}, {X: 160, Y: 112}, {X: 160, Y: 128}, {X: 64, Y: 128}}},
		},
	}
	return level.Build(data, nil)
}

func TestRampLevelGeometry(t *testing.T) {
	l := rampLevel()
	if len(l.Slopes) != 1 {
		t.Fatalf("got %d slopes, want 1", len(l.Slopes))
	}
	s := l.Slopes[0]
	if s.X1 != 0 || s.Y1 != 48 || s.X2 != 64 || s.Y2 != 112 || s.Slope != 1 {
		t.Fatalf("slope = %+v", s)
	}
}

func TestWalkDownhillTracksSurface(t *testing.T) {
	l := rampLevel()
	seg := l.Slopes[0]

	// Start standing on the slope near its top.
	b := Body{X: 18, Y: 48.99, W: 14, H: 24, Grounded: true, OnSlope: true}

	for i := 0; i < 30; i++ {
		Step(l, &b, 2, 2)
		if !b.Grounded {
			t.Fatalf("tick %d: lost ground contact at x=%v", i, b.X)
		}
		centerX := b.X + b.W/2
		feet := b.Y + b.H
		if b.OnSlope {
			if d := math.Abs(feet - seg.SurfaceY(centerX)); d > 0.02 {
				t.Fatalf("tick %d: feet %v off the surface by %v", i, feet, d)
			}
		} else if centerX <= seg.X2 {
			t.Fatalf("tick %d: left the slope early at centerX=%v", i, centerX)
		}
	}

	// The walk ends standing on the flat floor past the seam.
	if b.OnSlope {
		t.Error("still on the slope after walking past its end")
	}
	if feet := b.Y + b.H; math.Abs(feet-111.99) > 1e-9 {
		t.Errorf("feet = %v, want 111.99 on the floor", feet)
	}
}

func TestWalkUphillTracksSurface(t *testing.T) {
	l := rampLevel()
	seg := l.Slopes[0]

	// Start standing mid-slope and walk up toward (0,48).
	b := Body{X: 41, Y: 71.99, W: 14, H: 24, Grounded: true, OnSlope: true}

	for i := 0; i < 10; i++ {
		Step(l, &b, -2, 2)
		if !b.Grounded || !b.OnSlope {
			t.Fatalf("tick %d: grounded=%v onSlope=%v", i, b.Grounded, b.OnSlope)
		}
		centerX := b.X + b.W/2
		feet := b.Y + b.H
		if d := math.Abs(feet - seg.SurfaceY(centerX)); d > 0.02 {
			t.Fatalf("tick %d: feet %v off the surface by %v", i, feet, d)
		}
	}
	if b.X != 21 {
		t.Errorf("x = %v, want 21 after ten ticks", b.X)
	}
}

func TestLandOnSlopeFromAir(t *testing.T) {
	l := rampLevel()

	// Feet one unit above the surface at centerX=32 (surface y=80),
	// falling at dy=2.
	y, grounded, onSlope := ResolveSlopeVertical(l, 25, 55, 14, 24, 2, false, false)
	if !grounded || !onSlope {
		t.Fatalf("grounded=%v onSlope=%v, want true, true", grounded, onSlope)
	}
	if feet := y + 24; math.Abs(feet-79.99) > 1e-9 {
		t.Errorf("feet = %v, want 79.99", feet)
	}
}

func TestFarAboveSlopeFallsFree(t *testing.T) {
	l := rampLevel()

	// Feet 40 units above the surface: beyond the snap distance.
	y, grounded, onSlope := ResolveSlopeVertical(l, 25, 16, 14, 24, 2, false, false)
	if grounded || onSlope {
		t.Fatalf("grounded=%v onSlope=%v, want false, false", grounded, onSlope)
	}
	if y != 18 {
		t.Errorf("y = %v, want 18", y)
	}
}

func TestSlopePassThroughStaircase(t *testing.T) {
	// A hand-built segment with staircase remnants at and below the
	// surface row in the leading column. The flat resolver blocks on
	// them; the slope-aware resolver passes through.
	l := testLevel([2]int{5, 6}, [2]int{5, 7})
	l.Slopes = []level.Segment{level.NewSegment(0, 100, 160, 110, "")}

	x := ResolveSlopeHorizontal(l, 64, 81, 14, 24, 3, true)
	if x != 67 {
		t.Errorf("slope-aware x = %v, want 67", x)
	}

	flat := ResolveHorizontal(l, 64, 81, 14, 24, 3)
	if want := 80.0 - 14 - 0.01; math.Abs(flat-want) > 1e-9 {
		t.Errorf("flat x = %v, want %v", flat, want)
	}
}

func TestSlopeRelevanceCutoff(t *testing.T) {
	// Same wall, but the feet are far above the slope surface: the
	// segment is irrelevant and the wall blocks normally.
	l := testLevel(solidColumn(5)...)
	l.Slopes = []level.Segment{level.NewSegment(0, 100, 160, 110, "")}

	x := ResolveSlopeHorizontal(l, 64, 8, 14, 24, 3, false)
	if want := 80.0 - 14 - 0.01; math.Abs(x-want) > 1e-9 {
		t.Errorf("x = %v, want %v", x, want)
	}
}

func TestSlopeWallAboveSurfaceBlocks(t *testing.T) {
	// A wall column that extends well above the slope surface still
	// blocks a body standing on the slope.
	l := testLevel(solidColumn(5)...)
	l.Slopes = []level.Segment{level.NewSegment(0, 100, 160, 110, "")}

	// Feet on the surface near x=81 (surface y ~105).
	x := ResolveSlopeHorizontal(l, 64, 81, 14, 24, 3, true)
	if want := 80.0 - 14 - 0.01; math.Abs(x-want) > 1e-9 {
		t.Errorf("x = %v, want %v", x, want)
	}
}

func TestLandingPrefersLowestSurface(t *testing.T) {
	l := testLevel()
	l.Slopes = []level.Segment{
		level.NewSegment(0, 50, 160, 50, ""),
		level.NewSegment(0, 80, 160, 80, ""),
	}

	y, grounded, _ := ResolveSlopeVertical(l, 40, 54, 14, 24, 4, false, false)
	if !grounded {
		t.Fatal("body should land")
	}
	if feet := y + 24; math.Abs(feet-79.99) > 1e-9 {
		t.Errorf("feet = %v, want 79.99 on the lower surface", feet)
	}
}

func TestSlopeExitFallbackScan(t *testing.T) {
	// Just off a slope, moving down over a floor two rows beneath the
	// feet: the fallback scan grounds the body instead of reporting a
	// one-tick fall.
	l := testLevel([2]int{2, 7}, [2]int{3, 7})

	y, grounded, onSlope := ResolveSlopeVertical(l, 40, 76, 14, 24, 2, true, true)
	if !grounded || onSlope {
		t.Fatalf("grounded=%v onSlope=%v, want true, false", grounded, onSlope)
	}
	if feet := y + 24; math.Abs(feet-111.99) > 1e-9 {
		t.Errorf("feet = %v, want 111.99", feet)
	}

	// Without the prior slope contact the same motion is a plain fall.
	y, grounded, _ = ResolveSlopeVertical(l, 40, 76, 14, 24, 2, true, false)
	if grounded || y != 78 {
		t.Errorf("got (%v, %v), want (78, false)", y, grounded)
	}
}

func TestStepFlatIgnoresSlopes(t *testing.T) {
	l := testLevel([2]int{5, 6}, [2]int{5, 7})
	l.Slopes = []level.Segment{level.NewSegment(0, 100, 160, 110, "")}

	b := Body{X: 64, Y: 81, W: 14, H: 24, OnSlope: true}
	StepFlat(l, &b, 3, 0)

	if want := 80.0 - 14 - 0.01; math.Abs(b.X-want) > 1e-9 {
		t.Errorf("x = %v, want %v", b.X, want)
	}
	if b.OnSlope {
		t.Error("StepFlat must clear the on-slope flag")
	}
}
