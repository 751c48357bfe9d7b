package area

import (
	"fmt"

	"github.com/fragmenta/dunegrid"
)

// BoolView is the minimal read-only grid contract MapAreaFinder needs: a
// size and a membership test per point. dunegrid.BoolGrid satisfies it.
type BoolView interface {
	Size() dunegrid.Point
	At(p dunegrid.Point) bool
}

// MapAreaFinder enumerates the connected components of a boolean grid view
// under a chosen adjacency rule, producing one Area per component.
//
// Grounded on the teacher's paths.PathRange.ComputeCCAll: same iterative
// explicit-stack flood fill over a flat index space, rebuilt here to
// collect area.Area values per component (instead of stamping an int id
// buffer) and to expose the single-seed FillFrom variant spec.md section
// 4.2 requires, with its own "retain visited state across calls" mode.
type MapAreaFinder struct {
	view    BoolView
	rule    dunegrid.AdjacencyRule
	visited []bool
	size    dunegrid.Point
}

// NewMapAreaFinder returns a finder over view using the given adjacency
// rule. The visited bitmap is sized to view's current dimensions.
func NewMapAreaFinder(view BoolView, rule dunegrid.AdjacencyRule) *MapAreaFinder {
	size := view.Size()
	return &MapAreaFinder{
		view:    view,
		rule:    rule,
		visited: make([]bool, size.X*size.Y),
		size:    size,
	}
}

func (f *MapAreaFinder) idx(p dunegrid.Point) int {
	return p.Y*f.size.X + p.X
}

func (f *MapAreaFinder) inBounds(p dunegrid.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < f.size.X && p.Y < f.size.Y
}

// FindAll iterates cells in row-major order and begins a flood from every
// unvisited true cell, returning one Area per resulting connected
// component, in discovery order.
func (f *MapAreaFinder) FindAll() []*Area {
	var areas []*Area
	for y := 0; y < f.size.Y; y++ {
		for x := 0; x < f.size.X; x++ {
			p := dunegrid.Pt(x, y)
			if f.visited[f.idx(p)] || !f.view.At(p) {
				continue
			}
			areas = append(areas, f.flood(p))
		}
	}
	return areas
}

func (f *MapAreaFinder) flood(origin dunegrid.Point) *Area {
	a := NewArea()
	stack := []dunegrid.Point{origin}
	f.visited[f.idx(origin)] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a.Add(p)
		for _, n := range f.rule.Neighbors(p) {
			if !f.inBounds(n) || f.visited[f.idx(n)] || !f.view.At(n) {
				continue
			}
			f.visited[f.idx(n)] = true
			stack = append(stack, n)
		}
	}
	return a
}

// FillFrom floods from a single seed, returning the discovered Area, or nil
// if origin is false or already visited. When clearVisited is true, the
// finder's visited bitmap is reset before the flood so the call is
// independent of prior FillFrom/FindAll calls. When clearVisited is false,
// visited state persists across calls so a caller may chain several fills
// over the same view — but the view's size must not have changed since the
// finder was constructed, or since the last call; violating that is a
// *ConfigError.
func (f *MapAreaFinder) FillFrom(origin dunegrid.Point, clearVisited bool) (*Area, error) {
	size := f.view.Size()
	if size != f.size {
		if clearVisited {
			f.size = size
			f.visited = make([]bool, size.X*size.Y)
		} else {
			return nil, &ConfigError{Msg: fmt.Sprintf("MapAreaFinder: view size changed from %v to %v with clearVisited=false", f.size, size)}
		}
	}
	if clearVisited {
		for i := range f.visited {
			f.visited[i] = false
		}
	}
	if !f.inBounds(origin) || !f.view.At(origin) || f.visited[f.idx(origin)] {
		return nil, nil
	}
	return f.flood(origin), nil
}
