package core

import "testing"

func TestCellAdd(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		expected Cell
	}{
		{"up", Up, Cell{X: 5, Y: 4}},
		{"down", Down, Cell{X: 5, Y: 6}},
		{"left", Left, Cell{X: 4, Y: 5}},
		{"right", Right, Cell{X: 6, Y: 5}},
	}

	start := Cell{X: 5, Y: 5}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := start.Add(tc.dir); got != tc.expected {
				t.Errorf("Add(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirectionReverse(t *testing.T) {
	pairs := []struct{ a, b Direction }{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}

	for _, p := range pairs {
		if p.a.Reverse() != p.b {
			t.Errorf("%v.Reverse() = %v, expected %v", p.a, p.a.Reverse(), p.b)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if Up.String() != "up" || Right.String() != "right" {
		t.Errorf("unexpected names: %q %q", Up.String(), Right.String())
	}
	if (Direction{DX: 2}).String() != "unknown" {
		t.Error("non-unit direction should be unknown")
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 25, Height: 20}

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{X: 0, Y: 0}, true},
		{"bottom-right corner", Cell{X: 24, Y: 19}, true},
		{"right edge (exclusive)", Cell{X: 25, Y: 5}, false},
		{"bottom edge (exclusive)", Cell{X: 5, Y: 20}, false},
		{"negative x", Cell{X: -1, Y: 5}, false},
		{"negative y", Cell{X: 5, Y: -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.cell); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestGridCenterAndArea(t *testing.T) {
	g := Grid{Width: 25, Height: 20}

	if c := g.Center(); c != (Cell{X: 12, Y: 10}) {
		t.Errorf("Center() = %v, expected (12,10)", c)
	}
	if g.Area() != 500 {
		t.Errorf("Area() = %d, expected 500", g.Area())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestCellSet(t *testing.T) {
	g := Grid{Width: 3, Height: 3}
	s := NewCellSet([]Cell{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 3, Y: 0}, {X: 0, Y: 0}})

	if len(s) != 3 {
		t.Errorf("len = %d, expected 3 (duplicates collapse)", len(s))
	}
	if !s.Has(Cell{X: 2, Y: 2}) || s.Has(Cell{X: 1, Y: 1}) {
		t.Error("Has() reported wrong membership")
	}
	if n := s.CountIn(g); n != 2 {
		t.Errorf("CountIn() = %d, expected 2 (off-grid cell ignored)", n)
	}

	var empty CellSet
	if empty.Has(Cell{}) {
		t.Error("nil set should be empty")
	}
}
