package area

import (
	"testing"

	"github.com/fragmenta/dunegrid"
)

func TestMapAreaFinderFindAllSeparatesComponents(t *testing.T) {
	g := dunegrid.NewBoolGrid(5, 3)
	for _, p := range []dunegrid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}} {
		g.Set(p, true)
	}
	g.Set(dunegrid.Point{X: 4, Y: 2}, true)

	f := NewMapAreaFinder(g, dunegrid.CardinalsRule)
	areas := f.FindAll()
	if len(areas) != 2 {
		t.Fatalf("expected 2 components, got %d", len(areas))
	}
	if areas[0].Count() != 3 {
		t.Errorf("expected first component to have 3 cells, got %d", areas[0].Count())
	}
	if areas[1].Count() != 1 {
		t.Errorf("expected second component to have 1 cell, got %d", areas[1].Count())
	}
}

func TestMapAreaFinderFindAllIgnoresDiagonalsUnderCardinalsRule(t *testing.T) {
	g := dunegrid.NewBoolGrid(2, 2)
	g.Set(dunegrid.Point{X: 0, Y: 0}, true)
	g.Set(dunegrid.Point{X: 1, Y: 1}, true)

	f := NewMapAreaFinder(g, dunegrid.CardinalsRule)
	areas := f.FindAll()
	if len(areas) != 2 {
		t.Fatalf("expected diagonal-only neighbors to stay separate under cardinals, got %d components", len(areas))
	}
}

func TestMapAreaFinderFillFromSingleSeed(t *testing.T) {
	g := dunegrid.NewBoolGrid(3, 1)
	g.Set(dunegrid.Point{X: 0, Y: 0}, true)
	g.Set(dunegrid.Point{X: 1, Y: 0}, true)

	f := NewMapAreaFinder(g, dunegrid.CardinalsRule)
	a, err := f.FillFrom(dunegrid.Point{X: 0, Y: 0}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == nil || a.Count() != 2 {
		t.Fatalf("expected a 2-cell area, got %v", a)
	}

	a2, err := f.FillFrom(dunegrid.Point{X: 1, Y: 0}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a2 != nil {
		t.Fatalf("expected nil for an already-visited seed, got %v", a2)
	}
}

func TestMapAreaFinderFillFromFalseSeedReturnsNil(t *testing.T) {
	g := dunegrid.NewBoolGrid(2, 2)
	f := NewMapAreaFinder(g, dunegrid.CardinalsRule)
	a, err := f.FillFrom(dunegrid.Point{X: 0, Y: 0}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != nil {
		t.Fatalf("expected nil area for a false seed cell, got %v", a)
	}
}

// resizableBoolView is a test double whose Size() can change between calls,
// standing in for a map that gets regenerated at new dimensions.
type resizableBoolView struct {
	size  dunegrid.Point
	floor map[dunegrid.Point]bool
}

func (v *resizableBoolView) Size() dunegrid.Point { return v.size }
func (v *resizableBoolView) At(p dunegrid.Point) bool {
	return v.floor[p]
}

func TestMapAreaFinderFillFromClearVisitedAllowsResize(t *testing.T) {
	v := &resizableBoolView{size: dunegrid.Point{X: 2, Y: 2}, floor: map[dunegrid.Point]bool{{X: 0, Y: 0}: true}}
	f := NewMapAreaFinder(v, dunegrid.CardinalsRule)
	if _, err := f.FillFrom(dunegrid.Point{X: 0, Y: 0}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v.size = dunegrid.Point{X: 4, Y: 4}
	v.floor = map[dunegrid.Point]bool{{X: 3, Y: 3}: true}
	a, err := f.FillFrom(dunegrid.Point{X: 3, Y: 3}, true)
	if err != nil {
		t.Fatalf("expected clearVisited=true to tolerate a resized view, got error: %v", err)
	}
	if a == nil || a.Count() != 1 {
		t.Fatalf("expected a 1-cell area at the new seed, got %v", a)
	}
}

func TestMapAreaFinderFillFromRejectsResizeWithoutClear(t *testing.T) {
	v := &resizableBoolView{size: dunegrid.Point{X: 2, Y: 2}, floor: map[dunegrid.Point]bool{{X: 0, Y: 0}: true}}
	f := NewMapAreaFinder(v, dunegrid.CardinalsRule)
	if _, err := f.FillFrom(dunegrid.Point{X: 0, Y: 0}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v.size = dunegrid.Point{X: 3, Y: 3}
	v.floor = map[dunegrid.Point]bool{{X: 2, Y: 2}: true}
	_, err := f.FillFrom(dunegrid.Point{X: 2, Y: 2}, false)
	if err == nil {
		t.Fatalf("expected a *ConfigError when the view is resized without clearVisited")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}
