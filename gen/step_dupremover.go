package gen

import (
	"github.com/fragmenta/dunegrid"
	"github.com/fragmenta/dunegrid/area"
)

// DuplicatePointRemover scans an ItemList of areas in order and strips any
// point from a later area that already appeared in an earlier one, so that
// no lattice position is claimed by more than one recorded area (e.g. a
// maze tunnel that happened to re-carve a cell a room already owns).
//
// Built from spec.md section 2's leaf component list; no pack repository
// needs cross-area deduplication since none of them track overlapping
// named regions.
type DuplicatePointRemover struct {
	name string
	kind string
	tag  string
}

// NewDuplicatePointRemover returns a DuplicatePointRemover over the
// ItemList at (kind, tag).
func NewDuplicatePointRemover(name, kind, tag string) *DuplicatePointRemover {
	return &DuplicatePointRemover{name: name, kind: kind, tag: tag}
}

func (s *DuplicatePointRemover) Name() string { return s.name }

func (s *DuplicatePointRemover) Requirements() []Requirement {
	return []Requirement{{Kind: s.kind, Tag: s.tag}}
}

func (s *DuplicatePointRemover) Stages(ctx *Context) (StageEnumerator, error) {
	if err := ValidateRequirements(ctx, s.name, s.Requirements()); err != nil {
		return nil, err
	}
	list, err := ctx.ItemList(s.name, s.kind, s.tag)
	if err != nil {
		return nil, err
	}
	return singleStage(func() error {
		seen := make(map[dunegrid.Point]bool)
		for _, it := range list.Items() {
			a := it.(*area.Area)
			var dupes []dunegrid.Point
			for _, p := range a.Points() {
				if seen[p] {
					dupes = append(dupes, p)
				}
			}
			for _, p := range dupes {
				a.Remove(p)
			}
			for _, p := range a.Points() {
				seen[p] = true
			}
		}
		return nil
	}), nil
}
