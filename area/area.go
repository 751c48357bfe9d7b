// Package area provides the connected-region data structures shared by the
// map generator and the sense engine: a hashed point set with cached bounds
// (Area), a composite of such sets (MultiArea), an immutable rasterized
// polygon (PolygonArea), a connected-component flood fill (MapAreaFinder)
// and union-find (DisjointSet / KeyedDisjointSet).
package area

import "github.com/fragmenta/dunegrid"

// Area is an insertion-ordered set of lattice points with a cached bounding
// rectangle. Equality is by set membership, not insertion order.
//
// Grounded on the teacher's rl.Grid value-type, plain-struct style: Area is
// a small struct holding a slice (for iteration order) plus an index map
// (for O(1) membership), not a pointer-linked structure. spec.md's "hashing
// strategy selectable at construction (used to accelerate membership when a
// known coordinate range is provided)" is realized as an optional capacity
// hint on NewAreaSized, since Go's map type does not expose pluggable hash
// functions the way the original described.
type Area struct {
	points []dunegrid.Point
	index  map[dunegrid.Point]int
	bounds dunegrid.Rectangle
	hasAny bool
}

// NewArea returns an empty area.
func NewArea() *Area {
	return &Area{index: make(map[dunegrid.Point]int)}
}

// NewAreaSized returns an empty area whose internal index is pre-sized for
// capacity points, avoiding rehashing during bulk construction.
func NewAreaSized(capacity int) *Area {
	if capacity < 0 {
		capacity = 0
	}
	return &Area{index: make(map[dunegrid.Point]int, capacity), points: make([]dunegrid.Point, 0, capacity)}
}

// NewAreaFrom returns an area containing exactly the given points, in the
// order given, de-duplicated.
func NewAreaFrom(points []dunegrid.Point) *Area {
	a := NewAreaSized(len(points))
	for _, p := range points {
		a.Add(p)
	}
	return a
}

// Add inserts p into the area if not already present, and extends the cached
// bounds. Returns true if p was newly added.
func (a *Area) Add(p dunegrid.Point) bool {
	if _, ok := a.index[p]; ok {
		return false
	}
	a.index[p] = len(a.points)
	a.points = append(a.points, p)
	a.extendBounds(p)
	return true
}

func (a *Area) extendBounds(p dunegrid.Point) {
	if !a.hasAny {
		a.bounds = dunegrid.Rectangle{Min: p, Max: p}
		a.hasAny = true
		return
	}
	if p.X < a.bounds.Min.X {
		a.bounds.Min.X = p.X
	}
	if p.Y < a.bounds.Min.Y {
		a.bounds.Min.Y = p.Y
	}
	if p.X > a.bounds.Max.X {
		a.bounds.Max.X = p.X
	}
	if p.Y > a.bounds.Max.Y {
		a.bounds.Max.Y = p.Y
	}
}

// Contains reports whether p is a member of the area.
func (a *Area) Contains(p dunegrid.Point) bool {
	_, ok := a.index[p]
	return ok
}

// Count returns the number of points in the area.
func (a *Area) Count() int {
	return len(a.points)
}

// Points returns the area's points in insertion order. The caller must not
// mutate the returned slice.
func (a *Area) Points() []dunegrid.Point {
	return a.points
}

// Bounds returns the cached bounding rectangle. The zero Rectangle is
// returned for an empty area.
func (a *Area) Bounds() dunegrid.Rectangle {
	return a.bounds
}

// RemoveIf removes every point satisfying pred, recomputing the cached
// bounds, and returns the number of points removed.
func (a *Area) RemoveIf(pred func(dunegrid.Point) bool) int {
	kept := a.points[:0]
	removed := 0
	for _, p := range a.points {
		if pred(p) {
			delete(a.index, p)
			removed++
			continue
		}
		kept = append(kept, p)
	}
	a.points = kept
	a.reindex()
	a.recomputeBounds()
	return removed
}

// Remove removes a single point p, if present, and recomputes the cached
// bounds. It returns true if p was present.
func (a *Area) Remove(p dunegrid.Point) bool {
	if _, ok := a.index[p]; !ok {
		return false
	}
	n := a.RemoveIf(func(q dunegrid.Point) bool { return q == p })
	return n > 0
}

func (a *Area) reindex() {
	for i, p := range a.points {
		a.index[p] = i
	}
}

func (a *Area) recomputeBounds() {
	a.hasAny = false
	for _, p := range a.points {
		a.extendBounds(p)
	}
}

// Clone returns an independent copy of the area.
func (a *Area) Clone() *Area {
	c := NewAreaSized(len(a.points))
	for _, p := range a.points {
		c.Add(p)
	}
	return c
}

// Intersect returns a new area containing the points present in both a and
// b, in a's insertion order.
func (a *Area) Intersect(b *Area) *Area {
	r := NewArea()
	for _, p := range a.points {
		if b.Contains(p) {
			r.Add(p)
		}
	}
	return r
}

// Equals reports whether a and b contain exactly the same set of points,
// irrespective of insertion order.
func (a *Area) Equals(b *Area) bool {
	if a.Count() != b.Count() {
		return false
	}
	for _, p := range a.points {
		if !b.Contains(p) {
			return false
		}
	}
	return true
}
