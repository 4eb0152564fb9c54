package physics

import (
	"math"
	"testing"

	"github.com/chris-redfield/mega-human/level"
)

// testLevel builds a 10x8 grid at cell size 16 with the given solid cells.
func testLevel(solid ...[2]int) *level.Level {
	g := level.NewGrid(10, 8, 16)
	for _, c := range solid {
		g.SetTile(c[0], c[1], level.Solid)
	}
	return &level.Level{Name: "test", Grid: g, Width: 160, Height: 128}
}

func solidColumn(col int) [][2]int {
	cells := make([][2]int, 8)
	for r := 0; r < 8; r++ {
		cells[r] = [2]int{col, r}
	}
	return cells
}

func TestResolveHorizontalZeroDelta(t *testing.T) {
	l := testLevel(solidColumn(5)...)
	if got := ResolveHorizontal(l, 60, 40, 14, 24, 0); got != 60 {
		t.Errorf("got %v, want 60", got)
	}
}

func TestResolveHorizontalFreeMove(t *testing.T) {
	l := testLevel()
	if got := ResolveHorizontal(l, 60, 40, 14, 24, 3); got != 63 {
		t.Errorf("got %v, want 63", got)
	}
	if got := ResolveHorizontal(l, 60, 40, 14, 24, -3); got != 57 {
		t.Errorf("got %v, want 57", got)
	}
}

func TestResolveHorizontalWallStop(t *testing.T) {
	l := testLevel(solidColumn(5)...)

	// Approach the wall at x=80 in dx=3 steps from the left.
	x := 60.0
	for i := 0; i < 10; i++ {
		x = ResolveHorizontal(l, x, 40, 14, 24, 3)
	}

	want := 80.0 - 14 - 0.01
	if math.Abs(x-want) > 1e-9 {
		t.Fatalf("stopped at x=%v, want %v", x, want)
	}
	// Pushing further produces zero displacement.
	if again := ResolveHorizontal(l, x, 40, 14, 24, 3); again != x {
		t.Errorf("pushed past the wall: %v -> %v", x, again)
	}
}

func TestResolveHorizontalWallStopLeft(t *testing.T) {
	l := testLevel(solidColumn(2)...)

	x := ResolveHorizontal(l, 49, 40, 14, 24, -3)
	want := 48.0 + 0.01
	if math.Abs(x-want) > 1e-9 {
		t.Errorf("stopped at x=%v, want %v", x, want)
	}
}

func TestResolveHorizontalShortHitbox(t *testing.T) {
	// Hitbox shorter than a tile whose bottom edge alone overlaps the
	// blocking row; only the explicit bottom check catches it.
	l := testLevel([2]int{5, 3})

	x := ResolveHorizontal(l, 64, 44, 14, 10, 3)
	want := 80.0 - 14 - 0.01
	if math.Abs(x-want) > 1e-9 {
		t.Errorf("stopped at x=%v, want %v", x, want)
	}
}

func TestResolveVerticalZeroDelta(t *testing.T) {
	l := testLevel([2]int{2, 6}, [2]int{3, 6})
	y, grounded := ResolveVertical(l, 40, 70, 14, 24, 0)
	if y != 70 || grounded {
		t.Errorf("got (%v, %v), want (70, false)", y, grounded)
	}
}

func TestResolveVerticalLanding(t *testing.T) {
	l := testLevel([2]int{2, 6}, [2]int{3, 6})

	y, grounded := ResolveVertical(l, 40, 70, 14, 24, 3)
	want := 96.0 - 24 - 0.01
	if !grounded {
		t.Fatal("body should be grounded")
	}
	if math.Abs(y-want) > 1e-9 {
		t.Errorf("landed at y=%v, want %v", y, want)
	}
}

func TestResolveVerticalNoJitterAtRest(t *testing.T) {
	l := testLevel([2]int{2, 6}, [2]int{3, 6})

	y, _ := ResolveVertical(l, 40, 70, 14, 24, 3)
	for i := 0; i < 100; i++ {
		next, grounded := ResolveVertical(l, 40, y, 14, 24, 1)
		if !grounded {
			t.Fatalf("lost ground contact on tick %d", i)
		}
		if next != y {
			t.Fatalf("jitter on tick %d: %v -> %v", i, y, next)
		}
		y = next
	}
}

func TestResolveVerticalCeiling(t *testing.T) {
	l := testLevel([2]int{2, 1}, [2]int{3, 1})

	y, grounded := ResolveVertical(l, 40, 35, 14, 24, -5)
	want := 32.0 + 0.01
	if grounded {
		t.Error("ceiling hit must not ground the body")
	}
	if math.Abs(y-want) > 1e-9 {
		t.Errorf("got y=%v, want %v", y, want)
	}
}

func TestResolveVerticalFreeFall(t *testing.T) {
	l := testLevel()
	y, grounded := ResolveVertical(l, 40, 35, 14, 24, 5)
	if y != 40 || grounded {
		t.Errorf("got (%v, %v), want (40, false)", y, grounded)
	}
}

func TestResolveVerticalCornerInset(t *testing.T) {
	// Floor tile only under columns 2; a body whose inset bottom corners
	// both sample column 3 falls past it.
	l := testLevel([2]int{2, 6})

	if _, grounded := ResolveVertical(l, 48, 70, 14, 24, 3); grounded {
		t.Error("body fully right of the tile should not land on it")
	}
	if _, grounded := ResolveVertical(l, 40, 70, 14, 24, 3); !grounded {
		t.Error("body overlapping the tile should land on it")
	}
}

func TestCheckWallContact(t *testing.T) {
	right := testLevel(solidColumn(5)...)
	if got := CheckWallContact(right, 65, 40, 14, 24); got != 1 {
		t.Errorf("right contact = %d, want 1", got)
	}

	left := testLevel(solidColumn(2)...)
	if got := CheckWallContact(left, 48.01, 40, 14, 24); got != -1 {
		t.Errorf("left contact = %d, want -1", got)
	}

	none := testLevel()
	if got := CheckWallContact(none, 65, 40, 14, 24); got != 0 {
		t.Errorf("open-air contact = %d, want 0", got)
	}
}

func TestApplyFriction(t *testing.T) {
	if got := ApplyFriction(3, 0.5); got != 2.5 {
		t.Errorf("got %v, want 2.5", got)
	}
	if got := ApplyFriction(-3, 0.5); got != -2.5 {
		t.Errorf("got %v, want -2.5", got)
	}
	if got := ApplyFriction(0.3, 0.5); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(5, 3); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
	if got := ClampSpeed(-5, 3); got != -3 {
		t.Errorf("got %v, want -3", got)
	}
	if got := ClampSpeed(2, 3); got != 2 {
		t.Errorf("got %v, want 2", got)
	}
}
