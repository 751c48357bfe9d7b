package gen

import (
	"github.com/fragmenta/dunegrid"
	"github.com/fragmenta/dunegrid/area"
)

// AreaFinderStep invokes area.MapAreaFinder over WallFloor under the
// declared adjacency rule, appending every discovered component to Areas.
//
// Grounded on area.MapAreaFinder (in turn grounded on the teacher's
// paths.ComputeCCAll) — this step is the thin generation-pipeline adapter
// spec.md section 4.14 calls for.
type AreaFinderStep struct {
	name    string
	wfTag   string
	areaTag string
	rule    dunegrid.AdjacencyRule
}

// NewAreaFinderStep returns an AreaFinderStep reading WallFloor under
// wallFloorTag and appending to Areas under areasTag.
func NewAreaFinderStep(name, wallFloorTag, areasTag string, rule dunegrid.AdjacencyRule) *AreaFinderStep {
	return &AreaFinderStep{name: name, wfTag: wallFloorTag, areaTag: areasTag, rule: rule}
}

func (s *AreaFinderStep) Name() string { return s.name }

func (s *AreaFinderStep) Requirements() []Requirement {
	return []Requirement{{Kind: KindWallFloor, Tag: s.wfTag}}
}

func (s *AreaFinderStep) Stages(ctx *Context) (StageEnumerator, error) {
	if err := ValidateRequirements(ctx, s.name, s.Requirements()); err != nil {
		return nil, err
	}
	wf, err := ctx.WallFloor(s.name, s.wfTag)
	if err != nil {
		return nil, err
	}
	dst := ctx.ItemListOrNew(KindAreas, s.areaTag)
	return singleStage(func() error {
		finder := area.NewMapAreaFinder(wf, s.rule)
		for _, a := range finder.FindAll() {
			dst.Append(a, s.name)
		}
		return nil
	}), nil
}
