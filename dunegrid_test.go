package dunegrid

import "testing"

func TestRectanglePositions(t *testing.T) {
	r := NewRectangle(0, 0, 4, 2)
	if r.Width() != 5 || r.Height() != 3 {
		t.Fatalf("bad size: %dx%d", r.Width(), r.Height())
	}
	if len(r.Positions()) != 15 {
		t.Fatalf("bad position count: %d", len(r.Positions()))
	}
	if !r.IsOnSide(Point{0, 1}, West) {
		t.Errorf("(0,1) should be on West side")
	}
	if r.IsOnSide(Point{1, 1}, West) {
		t.Errorf("(1,1) should not be on West side")
	}
	if !r.IsOnSide(Point{2, 0}, North) {
		t.Errorf("(2,0) should be on North side")
	}
}

func TestRectanglePerimeter(t *testing.T) {
	r := NewRectangle(0, 0, 3, 3)
	perim := r.PerimeterPositions()
	// 4x4 square: perimeter has 4*4 - 2*2 = 12 positions
	if len(perim) != 12 {
		t.Fatalf("bad perimeter length: %d", len(perim))
	}
	seen := map[Point]bool{}
	for _, p := range perim {
		if seen[p] {
			t.Errorf("duplicate perimeter point %v", p)
		}
		seen[p] = true
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := map[Direction]Direction{
		North: South,
		East:  West,
		NorthEast: SouthWest,
		None: None,
	}
	for d, want := range cases {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestAdjacencyRuleNeighbors(t *testing.T) {
	p := Point{5, 5}
	if n := CardinalsRule.Neighbors(p); len(n) != 4 {
		t.Errorf("Cardinals: got %d neighbors, want 4", len(n))
	}
	if n := DiagonalsRule.Neighbors(p); len(n) != 4 {
		t.Errorf("Diagonals: got %d neighbors, want 4", len(n))
	}
	if n := EightWay.Neighbors(p); len(n) != 8 {
		t.Errorf("EightWay: got %d neighbors, want 8", len(n))
	}
}

func TestDistanceCalculate(t *testing.T) {
	p, q := Point{0, 0}, Point{3, 4}
	if d := Manhattan.Calculate(p, q); d != 7 {
		t.Errorf("Manhattan = %v, want 7", d)
	}
	if d := Chebyshev.Calculate(p, q); d != 4 {
		t.Errorf("Chebyshev = %v, want 4", d)
	}
	if d := Euclidean.Calculate(p, q); d != 5 {
		t.Errorf("Euclidean = %v, want 5", d)
	}
}

func TestLineBresenhamEndpoints(t *testing.T) {
	pts := Line(Point{0, 0}, Point{4, 2}, BresenhamLine)
	if pts[0] != (Point{0, 0}) {
		t.Errorf("bad start: %v", pts[0])
	}
	if pts[len(pts)-1] != (Point{4, 2}) {
		t.Errorf("bad end: %v", pts[len(pts)-1])
	}
}

func TestLineOrthogonal(t *testing.T) {
	pts := Line(Point{0, 0}, Point{2, 2}, OrthogonalLine)
	if pts[0] != (Point{0, 0}) || pts[len(pts)-1] != (Point{2, 2}) {
		t.Errorf("bad endpoints: %v", pts)
	}
	for _, p := range pts {
		if p.Y != 0 && p.X != 2 {
			// every point lies on the two legs of the L-shape
			t.Errorf("point %v is off both legs of the L-shape (y=0, then x=2)", p)
		}
	}
}

func TestFastAtan2Axes(t *testing.T) {
	cases := []struct {
		y, x, want float64
	}{
		{0, 1, 0},
		{1, 0, 0.25},
		{0, -1, 0.5},
		{-1, 0, 0.75},
	}
	for _, c := range cases {
		got := FastAtan2(c.y, c.x)
		if diff := got - c.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("FastAtan2(%v,%v) = %v, want %v", c.y, c.x, got, c.want)
		}
	}
}

func TestWrapMod(t *testing.T) {
	if WrapMod(-1, 8) != 7 {
		t.Errorf("WrapMod(-1,8) = %d, want 7", WrapMod(-1, 8))
	}
	if WrapMod(9, 8) != 1 {
		t.Errorf("WrapMod(9,8) = %d, want 1", WrapMod(9, 8))
	}
}

func TestBoolGridFillCount(t *testing.T) {
	g := NewBoolGrid(5, 5)
	g.Fill(true)
	if g.Count(true) != 25 {
		t.Errorf("Count(true) = %d, want 25", g.Count(true))
	}
	g.Set(Point{2, 2}, false)
	if g.Count(false) != 1 {
		t.Errorf("Count(false) = %d, want 1", g.Count(false))
	}
	if g.At(Point{100, 100}) != false {
		t.Errorf("out of bounds At should return false")
	}
}
