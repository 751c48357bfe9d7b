package gen

import "testing"

func TestRandomFillRejectsProbabilityOutOfRange(t *testing.T) {
	if _, err := NewRandomFill("fill", "terrain", RandomFillConfig{FillProbability: -1}, alwaysRNG{}); err == nil {
		t.Fatalf("expected an error for a negative probability")
	}
	if _, err := NewRandomFill("fill", "terrain", RandomFillConfig{FillProbability: 101}, alwaysRNG{}); err == nil {
		t.Fatalf("expected an error for a probability over 100")
	}
}

func TestRandomFillAtFullProbabilityFillsEverything(t *testing.T) {
	ctx, _ := NewContext(4, 3)
	step, err := NewRandomFill("fill", "terrain", RandomFillConfig{FillProbability: 100}, alwaysRNG{fill: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wf, _ := ctx.WallFloor("fill", "terrain")
	if wf.Count(true) != 12 {
		t.Fatalf("expected every cell filled, got %d floor cells", wf.Count(true))
	}
}

func TestRandomFillExcludesPerimeterWhenConfigured(t *testing.T) {
	ctx, _ := NewContext(4, 3)
	step, err := NewRandomFill("fill", "terrain", RandomFillConfig{FillProbability: 100, ExcludePerimeterPoints: true}, alwaysRNG{fill: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wf, _ := ctx.WallFloor("fill", "terrain")
	// Interior of a 4x3 grid is a single row at y=1, x=1,2: 2 cells.
	if wf.Count(true) != 2 {
		t.Fatalf("expected only the 2 interior cells filled, got %d", wf.Count(true))
	}
}

func TestRandomFillZeroProbabilityLeavesAllWall(t *testing.T) {
	ctx, _ := NewContext(3, 3)
	step, err := NewRandomFill("fill", "terrain", RandomFillConfig{FillProbability: 0}, alwaysRNG{fill: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wf, _ := ctx.WallFloor("fill", "terrain")
	if wf.Count(true) != 0 {
		t.Fatalf("expected no floor cells at 0%% probability, got %d", wf.Count(true))
	}
}

func TestRandomFillPausesEveryNCells(t *testing.T) {
	ctx, _ := NewContext(3, 3) // 9 cells
	step, err := NewRandomFill("fill", "terrain", RandomFillConfig{FillProbability: 0, PauseEveryNCells: 4}, alwaysRNG{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	en, err := step.Stages(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stages := 0
	for {
		more, err := en.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stages++
		if !more {
			break
		}
	}
	// 9 cells paused by 4 => stages of 4, 4, 1.
	if stages != 3 {
		t.Fatalf("expected 3 pause stages for 9 cells at 4 per stage, got %d", stages)
	}
}
