package gen

import "testing"

func TestNewContextRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewContext(0, 5); err == nil {
		t.Fatalf("expected an error for zero width")
	}
	if _, err := NewContext(5, -1); err == nil {
		t.Fatalf("expected an error for negative height")
	}
}

func TestContextAddRejectsDuplicateKey(t *testing.T) {
	ctx, err := NewContext(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ctx.Add("Widget", "a", 1); err != nil {
		t.Fatalf("unexpected error on first Add: %v", err)
	}
	if err := ctx.Add("Widget", "a", 2); err == nil {
		t.Fatalf("expected an error re-adding the same (kind, tag)")
	}
	if _, ok := ctx.GetFirst(KindWallFloor, "other"); ok {
		t.Fatalf("expected a distinct tag to be unrelated")
	}
}

func TestContextSetOverwritesWithoutError(t *testing.T) {
	ctx, _ := NewContext(4, 4)
	ctx.Set("Widget", "a", 1)
	ctx.Set("Widget", "a", 2)
	v, ok := ctx.GetFirst("Widget", "a")
	if !ok || v.(int) != 2 {
		t.Fatalf("expected Set to overwrite, got %v, %v", v, ok)
	}
}

func TestContextGetFirstOrNewConstructsOnce(t *testing.T) {
	ctx, _ := NewContext(4, 4)
	calls := 0
	factory := func() interface{} {
		calls++
		return NewItemList()
	}
	first := ctx.GetFirstOrNew("Rooms", "r", factory)
	second := ctx.GetFirstOrNew("Rooms", "r", factory)
	if first != second {
		t.Fatalf("expected the same instance to be returned on the second call")
	}
	if calls != 1 {
		t.Fatalf("expected factory to run exactly once, ran %d times", calls)
	}
}

func TestContextRequireReturnsMissingComponentError(t *testing.T) {
	ctx, _ := NewContext(4, 4)
	_, err := ctx.Require("SomeStep", KindRooms, "r")
	if err == nil {
		t.Fatalf("expected a missing-component error")
	}
	if _, ok := err.(*MissingComponentError); !ok {
		t.Fatalf("expected *MissingComponentError, got %T", err)
	}
}

func TestContextWallFloorOrNewCreatesAllWallGrid(t *testing.T) {
	ctx, _ := NewContext(3, 2)
	wf := ctx.WallFloorOrNew("terrain")
	size := wf.Size()
	if size.X != 3 || size.Y != 2 {
		t.Fatalf("expected a 3x2 grid, got %v", size)
	}
	if wf.Count(true) != 0 {
		t.Fatalf("expected a fresh WallFloor grid to be all wall, found %d floor cells", wf.Count(true))
	}
	// Republishing the same tag returns the same instance.
	if wf2 := ctx.WallFloorOrNew("terrain"); wf2 != wf {
		t.Fatalf("expected WallFloorOrNew to return the existing grid for an already-present tag")
	}
}
