package sense

import (
	"sync"

	"github.com/fragmenta/dunegrid"
)

// ResizeFunc returns a fresh, zeroed result grid of the given size. A sense
// map calls it whenever its resistance view's dimensions change underneath
// it.
type ResizeFunc func(size dunegrid.Point) *dunegrid.FloatGrid

// MapBase holds the state shared by every sense map: the set of bound
// sources, the resistance view they sample, and the owned result view they
// aggregate into.
//
// Grounded on spec.md section 4.20; no pack repository aggregates multiple
// light sources into a shared grid.
type MapBase struct {
	sources    []Source
	resistance ResistanceView
	result     *dunegrid.FloatGrid
	resize     ResizeFunc

	// ParallelCalculate, when true and at least two sources are bound,
	// runs each source's CalculateLight on its own goroutine before the
	// (always sequential) aggregation pass.
	ParallelCalculate bool

	OnRecalculated  func()
	OnSenseMapReset func()
}

// NewMapBase returns a MapBase bound to resistance, with an initial result
// view built by resize.
func NewMapBase(resistance ResistanceView, resize ResizeFunc) *MapBase {
	return &MapBase{resistance: resistance, result: resize(resistance.Size()), resize: resize}
}

// AddSource binds a source's resistance view to this map's and appends it
// to the source list.
func (m *MapBase) AddSource(s Source) {
	s.SetResistanceView(m.resistance)
	m.sources = append(m.sources, s)
}

// RemoveSource detaches s's resistance view and drops it from the source
// list. A no-op if s is not a member.
func (m *MapBase) RemoveSource(s Source) {
	for i, src := range m.sources {
		if src == s {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
			s.SetResistanceView(nil)
			return
		}
	}
}

// Sources returns the currently bound sources, in addition order.
func (m *MapBase) Sources() []Source { return m.sources }

// Result returns the owned aggregated result view.
func (m *MapBase) Result() *dunegrid.FloatGrid { return m.result }

// ReadOnlyFloatView exposes a *dunegrid.FloatGrid's reads without its
// Set/Add/Fill mutators, so a sense map can publish its result view to
// callers without letting them corrupt the next aggregation pass.
type ReadOnlyFloatView struct {
	grid *dunegrid.FloatGrid
}

// Size returns the underlying grid's (width, height).
func (v ReadOnlyFloatView) Size() dunegrid.Point { return v.grid.Size() }

// Contains reports whether p is within the underlying grid.
func (v ReadOnlyFloatView) Contains(p dunegrid.Point) bool { return v.grid.Contains(p) }

// At returns the underlying grid's value at p, or 0 if out of bounds.
func (v ReadOnlyFloatView) At(p dunegrid.Point) float64 { return v.grid.At(p) }

// AsReadOnly returns a read-only view over the current result grid. The
// view reflects the result grid in place at the moment of the call; after a
// Calculate that triggers a resize, a previously obtained view keeps
// pointing at the discarded grid, so callers should re-fetch it after every
// Calculate rather than caching it across calculations.
func (m *MapBase) AsReadOnly() ReadOnlyFloatView { return ReadOnlyFloatView{grid: m.result} }

// reset rebuilds the result view if the resistance view has been resized,
// otherwise clears it in place, then fires OnSenseMapReset.
func (m *MapBase) reset() {
	if m.resistance.Size() != m.result.Size() {
		m.result = m.resize(m.resistance.Size())
	} else {
		m.result.Fill(0)
	}
	if m.OnSenseMapReset != nil {
		m.OnSenseMapReset()
	}
}

func (m *MapBase) fireRecalculated() {
	if m.OnRecalculated != nil {
		m.OnRecalculated()
	}
}

// HashSenseMap is the concrete sense map: it tracks which positions are
// currently and were previously illuminated via a pair of hash sets, so
// callers can cheaply diff one calculation against the next.
type HashSenseMap struct {
	*MapBase
	current  map[dunegrid.Point]bool
	previous map[dunegrid.Point]bool
}

// NewHashSenseMap returns an empty HashSenseMap bound to resistance.
func NewHashSenseMap(resistance ResistanceView, resize ResizeFunc) *HashSenseMap {
	return &HashSenseMap{MapBase: NewMapBase(resistance, resize), current: make(map[dunegrid.Point]bool)}
}

// Calculate resets the result view, runs every source's CalculateLight
// (concurrently if ParallelCalculate and there are at least two sources),
// then sequentially stamps each source's local buffer into the shared
// result, swapping the current illuminated-position set into previous
// first.
func (m *HashSenseMap) Calculate() {
	m.reset()
	m.previous, m.current = m.current, make(map[dunegrid.Point]bool)

	if m.ParallelCalculate && len(m.sources) >= 2 {
		var wg sync.WaitGroup
		for _, src := range m.sources {
			wg.Add(1)
			go func(src Source) {
				defer wg.Done()
				src.CalculateLight()
			}(src)
		}
		wg.Wait()
	} else {
		for _, src := range m.sources {
			src.CalculateLight()
		}
	}

	for _, src := range m.sources {
		m.stamp(src)
	}
	m.fireRecalculated()
}

// stamp additively aggregates src's local buffer into the shared result
// view, over the overlap of src's local square and the result's bounds,
// recording every position left with a positive value in current.
func (m *HashSenseMap) stamp(src Source) {
	pos := src.Position()
	center := src.Center()
	buf := src.Buffer()
	size := m.result.Size()

	minX, maxX := pos.X-center, pos.X+center
	minY, maxY := pos.Y-center, pos.Y+center
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > size.X-1 {
		maxX = size.X - 1
	}
	if maxY > size.Y-1 {
		maxY = size.Y - 1
	}

	for wy := minY; wy <= maxY; wy++ {
		for wx := minX; wx <= maxX; wx++ {
			w := dunegrid.Pt(wx, wy)
			local := dunegrid.Pt(wx-pos.X+center, wy-pos.Y+center)
			v := buf.At(local)
			if v == 0 {
				continue
			}
			m.result.Add(w, v)
			if m.result.At(w) > 0 {
				m.current[w] = true
			}
		}
	}
}

// NewlyInSenseMap returns the positions illuminated by the most recent
// Calculate that were not illuminated by the one before it.
func (m *HashSenseMap) NewlyInSenseMap() []dunegrid.Point {
	var out []dunegrid.Point
	for p := range m.current {
		if !m.previous[p] {
			out = append(out, p)
		}
	}
	return out
}

// NewlyOutOfSenseMap returns the positions illuminated by the previous
// Calculate that are no longer illuminated.
func (m *HashSenseMap) NewlyOutOfSenseMap() []dunegrid.Point {
	var out []dunegrid.Point
	for p := range m.previous {
		if !m.current[p] {
			out = append(out, p)
		}
	}
	return out
}
