package gen

import (
	"testing"

	"github.com/fragmenta/dunegrid"
	"github.com/fragmenta/dunegrid/area"
)

func TestRectToAreaConvertsEveryRectangle(t *testing.T) {
	ctx, _ := NewContext(10, 10)
	rooms := ctx.ItemListOrNew(KindRooms, "rooms")
	r1 := dunegrid.Rectangle{Min: dunegrid.Pt(0, 0), Max: dunegrid.Pt(1, 1)}
	r2 := dunegrid.Rectangle{Min: dunegrid.Pt(5, 5), Max: dunegrid.Pt(5, 5)}
	rooms.Append(r1, "seed")
	rooms.Append(r2, "seed")

	step := NewRectToArea("to-area", KindRooms, "rooms", KindAreas, "areas")
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	areas, err := ctx.ItemList("to-area", KindAreas, "areas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if areas.Len() != 2 {
		t.Fatalf("expected 2 areas, got %d", areas.Len())
	}
	a1 := areas.Items()[0].(*area.Area)
	if a1.Count() != 4 {
		t.Fatalf("expected a 2x2 rectangle to produce 4 points, got %d", a1.Count())
	}
	a2 := areas.Items()[1].(*area.Area)
	if a2.Count() != 1 {
		t.Fatalf("expected a 1x1 rectangle to produce 1 point, got %d", a2.Count())
	}
}

func TestListAppenderCopiesAndOptionallyClears(t *testing.T) {
	ctx, _ := NewContext(5, 5)
	src := ctx.ItemListOrNew(KindTunnels, "maze-connections")
	src.Append(area.NewAreaFrom([]dunegrid.Point{{X: 0, Y: 0}}), "maze")

	step := NewListAppender("fold", KindTunnels, "maze-connections", KindTunnels, "tunnels", true)
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dst, err := ctx.ItemList("fold", KindTunnels, "tunnels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.Len() != 1 {
		t.Fatalf("expected 1 item copied into the destination list, got %d", dst.Len())
	}
	if src.Len() != 0 {
		t.Fatalf("expected clearSource=true to empty the source list, still has %d items", src.Len())
	}
}

func TestListAppenderKeepsSourceWhenNotClearing(t *testing.T) {
	ctx, _ := NewContext(5, 5)
	src := ctx.ItemListOrNew(KindTunnels, "maze-connections")
	src.Append(area.NewAreaFrom([]dunegrid.Point{{X: 0, Y: 0}}), "maze")

	step := NewListAppender("fold", KindTunnels, "maze-connections", KindTunnels, "tunnels", false)
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Len() != 1 {
		t.Fatalf("expected the source list to survive when clearSource=false, has %d items", src.Len())
	}
}

func TestDuplicatePointRemoverStripsLaterOwnership(t *testing.T) {
	ctx, _ := NewContext(5, 5)
	list := ctx.ItemListOrNew(KindAreas, "areas")
	a1 := area.NewAreaFrom([]dunegrid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	a2 := area.NewAreaFrom([]dunegrid.Point{{X: 1, Y: 0}, {X: 2, Y: 0}})
	list.Append(a1, "first")
	list.Append(a2, "second")

	step := NewDuplicatePointRemover("dedup", KindAreas, "areas")
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a1.Count() != 2 {
		t.Fatalf("expected the first (earlier) area untouched, got %d points", a1.Count())
	}
	if a2.Count() != 1 || a2.Contains(dunegrid.Point{X: 1, Y: 0}) {
		t.Fatalf("expected the later area to lose the shared point, got %v", a2.Points())
	}
}
