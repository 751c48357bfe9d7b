package gen

import (
	"github.com/fragmenta/dunegrid"
	"github.com/fragmenta/dunegrid/area"
)

// RectToArea translates every rectangle in a source ItemList (typically
// Rooms) into an equivalent area.Area of its covered positions, appending
// each to a destination ItemList (typically Areas).
//
// Built from spec.md section 2's leaf component list ("rectangle-to-area
// translator"); no pack repository needs this conversion since none of
// them carve discrete rooms.
type RectToArea struct {
	name    string
	srcKind string
	srcTag  string
	dstKind string
	dstTag  string
}

// NewRectToArea returns a RectToArea step reading rectangles from
// (srcKind, srcTag) and appending areas to (dstKind, dstTag).
func NewRectToArea(name, srcKind, srcTag, dstKind, dstTag string) *RectToArea {
	return &RectToArea{name: name, srcKind: srcKind, srcTag: srcTag, dstKind: dstKind, dstTag: dstTag}
}

func (s *RectToArea) Name() string { return s.name }

func (s *RectToArea) Requirements() []Requirement {
	return []Requirement{{Kind: s.srcKind, Tag: s.srcTag}}
}

func (s *RectToArea) Stages(ctx *Context) (StageEnumerator, error) {
	if err := ValidateRequirements(ctx, s.name, s.Requirements()); err != nil {
		return nil, err
	}
	src, err := ctx.ItemList(s.name, s.srcKind, s.srcTag)
	if err != nil {
		return nil, err
	}
	dst := ctx.ItemListOrNew(s.dstKind, s.dstTag)
	return singleStage(func() error {
		for _, it := range src.Items() {
			r := it.(dunegrid.Rectangle)
			a := area.NewAreaFrom(r.Positions())
			dst.Append(a, s.name)
		}
		return nil
	}), nil
}
