package sense

import (
	"testing"

	"github.com/fragmenta/dunegrid"
)

func TestShadowcastingSourceIlluminatesOpenRoomWithinRadius(t *testing.T) {
	s, err := NewShadowcastingSource(5, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resistance := dunegrid.NewFloatGrid(21, 21)
	s.SetResistanceView(resistance)
	s.SetPosition(dunegrid.Pt(10, 10))
	s.CalculateLight()

	center := s.Center()
	if got := s.Buffer().At(dunegrid.Pt(center, center)); got != 1.0 {
		t.Fatalf("expected the source's own cell to be lit at full intensity, got %v", got)
	}
	// A corner of the local buffer is farther than the radius even though it
	// lies inside the buffer's square bounds.
	corner := dunegrid.Pt(0, 0)
	if got := s.Buffer().At(corner); got != 0 {
		t.Fatalf("expected a buffer corner beyond the radius to stay dark, got %v", got)
	}
	// An orthogonally adjacent open cell at distance 1 should be lit.
	adjacent := dunegrid.Pt(center+1, center)
	if got := s.Buffer().At(adjacent); got <= 0 {
		t.Fatalf("expected an adjacent open cell to be lit, got %v", got)
	}
}

func TestShadowcastingSourceCastsAShadowBehindAWall(t *testing.T) {
	s, err := NewShadowcastingSource(5, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resistance := dunegrid.NewFloatGrid(21, 21)
	pos := dunegrid.Pt(10, 10)
	wall := dunegrid.Pt(10, 9) // directly north of the source
	behindWall := dunegrid.Pt(10, 8)
	besideWall := dunegrid.Pt(7, 9) // same row, well clear of the wall
	resistance.Set(wall, 1.0)

	s.SetResistanceView(resistance)
	s.SetPosition(pos)
	s.CalculateLight()

	center := s.Center()
	toLocal := func(w dunegrid.Point) dunegrid.Point {
		return dunegrid.Pt(center+w.X-pos.X, center+w.Y-pos.Y)
	}
	if got := s.Buffer().At(toLocal(wall)); got <= 0 {
		t.Fatalf("expected the wall cell itself to be lit, got %v", got)
	}
	if got := s.Buffer().At(toLocal(behindWall)); got != 0 {
		t.Fatalf("expected the cell behind the wall to stay dark, got %v", got)
	}
	if got := s.Buffer().At(toLocal(besideWall)); got <= 0 {
		t.Fatalf("expected a cell clear of the wall's shadow to be lit, got %v", got)
	}
}

func TestShadowcastingSourceRespectsAngleRestriction(t *testing.T) {
	s, err := NewShadowcastingSource(4, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetAngle(0) // facing north
	if err := s.SetSpan(90); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resistance := dunegrid.NewFloatGrid(15, 15)
	s.SetResistanceView(resistance)
	s.SetPosition(dunegrid.Pt(7, 7))
	s.CalculateLight()

	center := s.Center()
	north := dunegrid.Pt(center, center-2)
	south := dunegrid.Pt(center, center+2)
	if got := s.Buffer().At(north); got <= 0 {
		t.Fatalf("expected the cell ahead of a north-facing cone to be lit, got %v", got)
	}
	if got := s.Buffer().At(south); got != 0 {
		t.Fatalf("expected the cell behind a north-facing cone to stay dark, got %v", got)
	}
}

func TestShadowcastingSourceChebyshevMetricMatchesSquareFalloff(t *testing.T) {
	s, err := NewShadowcastingSource(3, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Metric = dunegrid.Chebyshev
	resistance := dunegrid.NewFloatGrid(20, 20)
	s.SetResistanceView(resistance)
	s.SetPosition(dunegrid.Pt(10, 10))
	s.CalculateLight()

	decay := 1.0 / (3.0 + 1.0)
	center := s.Center()
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			local := dunegrid.Pt(center+dx, center+dy)
			d := dunegrid.Chebyshev.Calculate(dunegrid.Point{}, dunegrid.Pt(dx, dy))
			want := 0.0
			if d <= 3 {
				want = 1.0 - decay*d
			}
			if got := s.Buffer().At(local); got != want {
				t.Fatalf("at offset (%d,%d): expected %v under a Chebyshev metric, got %v", dx, dy, want, got)
			}
		}
	}
}

func TestShadowcastingSourceNoopWhenDisabledOrUnbound(t *testing.T) {
	s, err := NewShadowcastingSource(3, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.CalculateLight() // unbound: must not panic, buffer stays zeroed
	center := s.Center()
	if got := s.Buffer().At(dunegrid.Pt(center, center)); got != 0 {
		t.Fatalf("expected an unbound source's buffer to remain untouched, got %v", got)
	}

	resistance := dunegrid.NewFloatGrid(10, 10)
	s.SetResistanceView(resistance)
	s.SetEnabled(false)
	s.CalculateLight()
	if got := s.Buffer().At(dunegrid.Pt(center, center)); got != 0 {
		t.Fatalf("expected a disabled source's buffer to remain untouched, got %v", got)
	}
}
