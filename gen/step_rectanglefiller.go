package gen

import "github.com/fragmenta/dunegrid"

// RectangleFiller sets the whole map's interior to floor and its outer
// perimeter to wall, in a single pass. It is typically the first step in
// a pipeline that carves rooms out of open ground rather than mazes out
// of solid rock.
//
// Grounded on spec.md section 4.16; mirrors the teacher's RangeTile
// whole-grid fill idiom.
type RectangleFiller struct {
	name  string
	wfTag string
}

// NewRectangleFiller returns a RectangleFiller step.
func NewRectangleFiller(name, wallFloorTag string) *RectangleFiller {
	return &RectangleFiller{name: name, wfTag: wallFloorTag}
}

func (s *RectangleFiller) Name() string { return s.name }

func (s *RectangleFiller) Requirements() []Requirement { return nil }

func (s *RectangleFiller) Stages(ctx *Context) (StageEnumerator, error) {
	wf := ctx.WallFloorOrNew(s.wfTag)
	return singleStage(func() error {
		size := wf.Size()
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				p := dunegrid.Pt(x, y)
				onEdge := x == 0 || y == 0 || x == size.X-1 || y == size.Y-1
				wf.Set(p, !onEdge)
			}
		}
		return nil
	}), nil
}
