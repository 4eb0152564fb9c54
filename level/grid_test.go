package level

import "testing"

func TestTileOutOfRangeIsSolid(t *testing.T) {
	g := NewGrid(10, 8, 16)

	cases := [][2]int{
		{-1, 0}, {0, -1}, {10, 0}, {0, 8},
		{-1000, 4}, {4, -1000}, {1000, 4}, {4, 1000},
	}
	for _, c := range cases {
		if got := g.Tile(c[0], c[1]); got != Solid {
			t.Errorf("Tile(%d, %d) = %d, want Solid", c[0], c[1], got)
		}
	}
}

func TestTileInRangeStartsEmpty(t *testing.T) {
	g := NewGrid(10, 8, 16)
	if got := g.Tile(0, 0); got != Empty {
		t.Errorf("Tile(0, 0) = %d, want Empty", got)
	}
	if got := g.Tile(9, 7); got != Empty {
		t.Errorf("Tile(9, 7) = %d, want Empty", got)
	}
}

func TestSetTileRoundTrip(t *testing.T) {
	g := NewGrid(10, 8, 16)

	g.SetTile(3, 5, Solid)
	if got := g.Tile(3, 5); got != Solid {
		t.Errorf("Tile(3, 5) = %d, want Solid after SetTile", got)
	}
	g.SetTile(3, 5, Empty)
	if got := g.Tile(3, 5); got != Empty {
		t.Errorf("Tile(3, 5) = %d, want Empty after clearing", got)
	}
}

func TestSetTileOutOfRangeIsNoOp(t *testing.T) {
	g := NewGrid(4, 4, 16)
	g.SetTile(-1, 2, Solid)
	g.SetTile(2, -1, Solid)
	g.SetTile(4, 2, Solid)
	g.SetTile(2, 4, Solid)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if g.Tile(c, r) != Empty {
				t.Fatalf("Tile(%d, %d) changed by out-of-range SetTile", c, r)
			}
		}
	}
}

func TestWorldToGridConversion(t *testing.T) {
	g := NewGrid(10, 10, 16)

	if got := g.ColAt(31.9); got != 1 {
		t.Errorf("ColAt(31.9) = %d, want 1", got)
	}
	if got := g.ColAt(32); got != 2 {
		t.Errorf("ColAt(32) = %d, want 2", got)
	}
	if got := g.RowAt(-0.1); got != -1 {
		t.Errorf("RowAt(-0.1) = %d, want -1", got)
	}
}
