package grid

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir     Direction
		wantRow int
		wantCol int
	}{
		{Up, -1, 0},
		{Down, 1, 0},
		{Left, 0, -1},
		{Right, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dr, dc := tt.dir.Delta()
			if dr != tt.wantRow || dc != tt.wantCol {
				t.Errorf("Delta() = (%d, %d), want (%d, %d)", dr, dc, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("Opposite of opposite of %v = %v, want %v", d, got, d)
		}
	}
}

func TestParseDirectionRoundTrip(t *testing.T) {
	for _, d := range AllDirections() {
		if got := ParseDirection(d.String()); got != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", d.String(), got, d)
		}
	}

	if got := ParseDirection("sideways"); got != Down {
		t.Errorf("ParseDirection of unknown string = %v, want Down", got)
	}
}

func TestGridOutOfBoundsIsWall(t *testing.T) {
	var g Grid

	tests := []Point{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: Rows, Col: 0},
		{Row: 0, Col: Cols},
	}

	for _, p := range tests {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v) = true, want false", p)
		}
		if got := g.At(p); got != TileWall {
			t.Errorf("At(%v) = %v, want wall", p, got)
		}
	}
}

func TestTileWalkable(t *testing.T) {
	tests := []struct {
		tile TileKind
		want bool
	}{
		{TileFloor, true},
		{TileDoor, true},
		{TileStairs, true},
		{TileWall, false},
		{TileFurniture, false},
		{TileInteract, false},
		{TileCounter, false},
	}

	for _, tt := range tests {
		t.Run(tt.tile.String(), func(t *testing.T) {
			if got := tt.tile.Walkable(); got != tt.want {
				t.Errorf("Walkable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointStep(t *testing.T) {
	p := Point{Row: 5, Col: 5}
	if got := p.Step(Up); got != (Point{Row: 4, Col: 5}) {
		t.Errorf("Step(Up) = %v", got)
	}
	if got := p.Step(Right); got != (Point{Row: 5, Col: 6}) {
		t.Errorf("Step(Right) = %v", got)
	}
}
