package area

import (
	"testing"

	"github.com/fragmenta/dunegrid"
)

func TestAreaAddIsIdempotent(t *testing.T) {
	a := NewArea()
	if !a.Add(dunegrid.Point{X: 1, Y: 1}) {
		t.Fatalf("expected first Add to report true")
	}
	if a.Add(dunegrid.Point{X: 1, Y: 1}) {
		t.Fatalf("expected re-Add of an existing point to report false")
	}
	if a.Count() != 1 {
		t.Fatalf("expected count 1 after duplicate Add, got %d", a.Count())
	}
}

func TestAreaBoundsTracksExtremes(t *testing.T) {
	a := NewArea()
	a.Add(dunegrid.Point{X: 3, Y: 5})
	a.Add(dunegrid.Point{X: -1, Y: 2})
	a.Add(dunegrid.Point{X: 2, Y: -4})

	want := dunegrid.Rectangle{Min: dunegrid.Point{X: -1, Y: -4}, Max: dunegrid.Point{X: 3, Y: 5}}
	if a.Bounds() != want {
		t.Fatalf("expected bounds %v, got %v", want, a.Bounds())
	}
}

func TestAreaRemoveIfRecomputesBounds(t *testing.T) {
	a := NewAreaFrom([]dunegrid.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 2, Y: 2}})
	removed := a.RemoveIf(func(p dunegrid.Point) bool { return p.X == 5 })
	if removed != 1 {
		t.Fatalf("expected to remove 1 point, removed %d", removed)
	}
	want := dunegrid.Rectangle{Min: dunegrid.Point{X: 0, Y: 0}, Max: dunegrid.Point{X: 2, Y: 2}}
	if a.Bounds() != want {
		t.Fatalf("expected shrunk bounds %v, got %v", want, a.Bounds())
	}
	if a.Contains(dunegrid.Point{X: 5, Y: 5}) {
		t.Fatalf("expected removed point to no longer be a member")
	}
}

func TestAreaRemoveSinglePoint(t *testing.T) {
	a := NewAreaFrom([]dunegrid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if !a.Remove(dunegrid.Point{X: 0, Y: 0}) {
		t.Fatalf("expected Remove to report true for a present point")
	}
	if a.Remove(dunegrid.Point{X: 0, Y: 0}) {
		t.Fatalf("expected Remove to report false for an absent point")
	}
	if a.Count() != 1 {
		t.Fatalf("expected 1 point left, got %d", a.Count())
	}
}

func TestAreaCloneIsIndependent(t *testing.T) {
	a := NewAreaFrom([]dunegrid.Point{{X: 0, Y: 0}})
	c := a.Clone()
	c.Add(dunegrid.Point{X: 1, Y: 1})
	if a.Count() != 1 {
		t.Fatalf("expected original area to be untouched by mutating the clone, got count %d", a.Count())
	}
	if c.Count() != 2 {
		t.Fatalf("expected clone to have the added point, got count %d", c.Count())
	}
}

func TestAreaIntersect(t *testing.T) {
	a := NewAreaFrom([]dunegrid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	b := NewAreaFrom([]dunegrid.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})
	in := a.Intersect(b)
	if in.Count() != 2 {
		t.Fatalf("expected 2 common points, got %d", in.Count())
	}
	if !in.Contains(dunegrid.Point{X: 1, Y: 0}) || !in.Contains(dunegrid.Point{X: 2, Y: 0}) {
		t.Fatalf("expected intersection to contain the shared points, got %v", in.Points())
	}
}

func TestAreaEqualsIgnoresOrder(t *testing.T) {
	a := NewAreaFrom([]dunegrid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	b := NewAreaFrom([]dunegrid.Point{{X: 1, Y: 1}, {X: 0, Y: 0}})
	if !a.Equals(b) {
		t.Fatalf("expected two areas with the same points in different insertion order to be equal")
	}
	c := NewAreaFrom([]dunegrid.Point{{X: 0, Y: 0}})
	if a.Equals(c) {
		t.Fatalf("expected areas with different counts to be unequal")
	}
}
