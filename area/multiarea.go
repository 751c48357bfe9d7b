package area

import "github.com/fragmenta/dunegrid"

// MultiArea is a composite of sub-areas: iteration, indexed access and
// membership are all defined over the union. Sub-areas are referenced, not
// owned — the same *Area value may be shared between a MultiArea and its
// original owner, matching spec.md section 9's note that MultiArea is
// intentionally a shallow, non-owning composite.
//
// Grounded on the teacher's rl.Grid.Slice, which returns a grid sharing the
// same underlying buffer as its parent rather than copying: MultiArea
// applies the same "share, don't copy" discipline one level up, to a list of
// Area values instead of a cell buffer.
type MultiArea struct {
	sub []*Area
}

// NewMultiArea returns an empty MultiArea.
func NewMultiArea() *MultiArea {
	return &MultiArea{}
}

// NewMultiAreaFrom returns a MultiArea over the given sub-areas, in order.
func NewMultiAreaFrom(areas []*Area) *MultiArea {
	return &MultiArea{sub: append([]*Area(nil), areas...)}
}

// Append adds a to the end of the sub-area list.
func (m *MultiArea) Append(a *Area) {
	m.sub = append(m.sub, a)
}

// SubAreas returns the sub-area list. The caller must not mutate the
// returned slice.
func (m *MultiArea) SubAreas() []*Area {
	return m.sub
}

// Count returns the total number of points across every sub-area (with
// duplicates counted once per sub-area, matching a concatenated iteration).
func (m *MultiArea) Count() int {
	n := 0
	for _, a := range m.sub {
		n += a.Count()
	}
	return n
}

// At returns the i-th point in the concatenated iteration order (sub-area 0
// fully, then sub-area 1, and so on), and the index of the sub-area it came
// from. It panics if i is out of range.
func (m *MultiArea) At(i int) (dunegrid.Point, int) {
	for si, a := range m.sub {
		if i < a.Count() {
			return a.Points()[i], si
		}
		i -= a.Count()
	}
	panic("area: MultiArea index out of range")
}

// Contains reports whether p belongs to any sub-area.
func (m *MultiArea) Contains(p dunegrid.Point) bool {
	for _, a := range m.sub {
		if a.Contains(p) {
			return true
		}
	}
	return false
}

// Iter calls fn for every point across every sub-area, in concatenated
// order.
func (m *MultiArea) Iter(fn func(dunegrid.Point)) {
	for _, a := range m.sub {
		for _, p := range a.Points() {
			fn(p)
		}
	}
}

// Bounds returns the union of every sub-area's bounding rectangle. Returns
// the zero Rectangle if there are no sub-areas or all are empty.
func (m *MultiArea) Bounds() dunegrid.Rectangle {
	var r dunegrid.Rectangle
	has := false
	for _, a := range m.sub {
		if a.Count() == 0 {
			continue
		}
		b := a.Bounds()
		if !has {
			r = b
			has = true
			continue
		}
		if b.Min.X < r.Min.X {
			r.Min.X = b.Min.X
		}
		if b.Min.Y < r.Min.Y {
			r.Min.Y = b.Min.Y
		}
		if b.Max.X > r.Max.X {
			r.Max.X = b.Max.X
		}
		if b.Max.Y > r.Max.Y {
			r.Max.Y = b.Max.Y
		}
	}
	return r
}
