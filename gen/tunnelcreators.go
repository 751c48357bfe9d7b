package gen

import (
	"github.com/fragmenta/dunegrid"
	"github.com/fragmenta/dunegrid/area"
)

// TunnelCreator carves a corridor between two points into wf, returning the
// area of cells it set to floor.
type TunnelCreator interface {
	Carve(wf *dunegrid.BoolGrid, from, to dunegrid.Point, rng dunegrid.RNG) *area.Area
}

// HorizontalVertical carves an L-shaped corridor: a horizontal leg then a
// vertical leg, or the reverse, chosen by a fair coin flip.
//
// Grounded on spec.md section 4.9's text; no pack repository carves
// L-shaped corridors (gruid has no rooms-and-corridors generator).
type HorizontalVertical struct{}

func (HorizontalVertical) Carve(wf *dunegrid.BoolGrid, from, to dunegrid.Point, rng dunegrid.RNG) *area.Area {
	a := area.NewArea()
	carveHLine := func(y, x0, x1 int) {
		lo, hi := x0, x1
		if lo > hi {
			lo, hi = hi, lo
		}
		for x := lo; x <= hi; x++ {
			p := dunegrid.Pt(x, y)
			wf.Set(p, true)
			a.Add(p)
		}
	}
	carveVLine := func(x, y0, y1 int) {
		lo, hi := y0, y1
		if lo > hi {
			lo, hi = hi, lo
		}
		for y := lo; y <= hi; y++ {
			p := dunegrid.Pt(x, y)
			wf.Set(p, true)
			a.Add(p)
		}
	}
	if rng.Bool() {
		carveHLine(from.Y, from.X, to.X)
		carveVLine(to.X, from.Y, to.Y)
	} else {
		carveVLine(from.X, from.Y, to.Y)
		carveHLine(to.Y, from.X, to.X)
	}
	return a
}

// DirectLine carves a straight corridor: orthogonal rasterization for
// Manhattan distance, Bresenham otherwise. It optionally doubles the
// corridor width on the step of a vertical move, matching spec.md section
// 4.9's "also carve (x+1, y)" rule, excluding positions beyond the right
// edge of the map.
type DirectLine struct {
	Metric    dunegrid.Distance
	DoubleWide bool
	MapWidth  int
}

func (d DirectLine) Carve(wf *dunegrid.BoolGrid, from, to dunegrid.Point, rng dunegrid.RNG) *area.Area {
	alg := dunegrid.BresenhamLine
	if d.Metric == dunegrid.Manhattan {
		alg = dunegrid.OrthogonalLine
	}
	line := dunegrid.Line(from, to, alg)
	a := area.NewArea()
	carve := func(p dunegrid.Point) {
		if !wf.Contains(p) {
			return
		}
		wf.Set(p, true)
		a.Add(p)
	}
	var prev dunegrid.Point
	for i, p := range line {
		carve(p)
		if i > 0 && d.DoubleWide && p.Y != prev.Y {
			if prev.X+1 < d.MapWidth-1 {
				carve(dunegrid.Pt(prev.X+1, p.Y))
			}
		}
		prev = p
	}
	return a
}
