package area

import (
	"fmt"
	"math"

	"github.com/fragmenta/dunegrid"
)

// PolygonArea is an immutable rasterized polygon: a cyclic sequence of
// corners, an outer edge (one Area per side segment, collected into a
// MultiArea), an interior Area filled by an even-odd scanline rule, and a
// combined points MultiArea over outer ∪ inner.
//
// No repository in the retrieval pack rasterizes polygons; this is built
// directly from spec.md section 4.1's scanline algorithm, using the flat
// free-function geometry style paths/distance.go uses for small helpers
// rather than a class hierarchy.
type PolygonArea struct {
	corners []dunegrid.Point
	outer   *MultiArea
	inner   *Area
	points  *MultiArea
	bounds  dunegrid.Rectangle
	alg     dunegrid.LineAlgorithm
}

// ConfigError reports a configuration failure in this package: a
// PolygonArea built from fewer than three corners, a non-positive size or
// radius passed to one of the static constructors, or a MapAreaFinder view
// resized between FillFrom calls with clearVisited=false.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "area: " + e.Msg }

// NewPolygonArea rasterizes the polygon with corners in declaration order,
// using alg to rasterize each edge segment. It returns a *ConfigError if
// fewer than 3 corners are given.
func NewPolygonArea(corners []dunegrid.Point, alg dunegrid.LineAlgorithm) (*PolygonArea, error) {
	if len(corners) < 3 {
		return nil, &ConfigError{Msg: fmt.Sprintf("polygon needs >= 3 corners, got %d", len(corners))}
	}
	p := &PolygonArea{
		corners: append([]dunegrid.Point(nil), corners...),
		alg:     alg,
	}
	p.rasterize()
	return p, nil
}

func (p *PolygonArea) rasterize() {
	n := len(p.corners)
	outer := NewMultiArea()
	segOf := make(map[dunegrid.Point][]int)
	for i := 0; i < n; i++ {
		a, b := p.corners[i], p.corners[(i+1)%n]
		line := dunegrid.Line(a, b, p.alg)
		seg := NewAreaFrom(line)
		outer.Append(seg)
		for _, pt := range line {
			segOf[pt] = append(segOf[pt], i)
		}
	}
	p.outer = outer
	p.bounds = outer.Bounds()

	inner := NewArea()
	minY, maxY := p.bounds.Min.Y, p.bounds.Max.Y
	minX, maxX := p.bounds.Min.X, p.bounds.Max.X
	for y := minY + 1; y < maxY; y++ {
		segHits := make(map[int]bool)
		for x := minX; x < maxX; x++ {
			pt := dunegrid.Pt(x, y)
			if segs, onEdge := segOf[pt]; onEdge {
				for _, si := range segs {
					a := p.corners[si]
					b := p.corners[(si+1)%n]
					if a.Y < y || b.Y < y {
						segHits[si] = true
					}
				}
				continue
			}
			if len(segHits)%2 == 1 {
				inner.Add(pt)
			}
		}
	}
	p.inner = inner
	p.points = NewMultiAreaFrom(append(append([]*Area(nil), outer.SubAreas()...), inner))
}

// Corners returns the polygon's corner list, in declaration order. The
// caller must not mutate the returned slice.
func (p *PolygonArea) Corners() []dunegrid.Point {
	return p.corners
}

// OuterEdge returns the MultiArea of rasterized side segments, one Area per
// side, in declaration order.
func (p *PolygonArea) OuterEdge() *MultiArea {
	return p.outer
}

// Inner returns the even-odd scanline interior.
func (p *PolygonArea) Inner() *Area {
	return p.inner
}

// Points returns the combined outer ∪ inner MultiArea.
func (p *PolygonArea) Points() *MultiArea {
	return p.points
}

// Bounds returns the bounding rectangle of the outer edge.
func (p *PolygonArea) Bounds() dunegrid.Rectangle {
	return p.bounds
}

// Count returns |outer| + |inner|.
func (p *PolygonArea) Count() int {
	return p.outer.Count() + p.inner.Count()
}

// Contains reports whether q belongs to the outer edge or the interior.
func (p *PolygonArea) Contains(q dunegrid.Point) bool {
	return p.outer.Contains(q) || p.inner.Contains(q)
}

// Matches reports cyclic equality: some rotation of b's corner list equals
// p's corner list element-wise, in the same traversal direction. Reversed
// corner order (the mirror image) never matches, matching spec.md's
// explicit direction-sensitive semantics — this module makes no attempt to
// normalize mirror images as equal.
func (p *PolygonArea) Matches(b *PolygonArea) bool {
	if len(p.corners) != len(b.corners) {
		return false
	}
	n := len(p.corners)
	if n == 0 {
		return true
	}
	for shift := 0; shift < n; shift++ {
		if b.corners[shift] != p.corners[0] {
			continue
		}
		match := true
		for i := 0; i < n; i++ {
			if b.corners[(shift+i)%n] != p.corners[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Translate returns a new PolygonArea with every corner shifted by (dx, dy).
func (p *PolygonArea) Translate(dx, dy int) *PolygonArea {
	out := make([]dunegrid.Point, len(p.corners))
	for i, c := range p.corners {
		out[i] = c.Shift(dx, dy)
	}
	np, _ := NewPolygonArea(out, p.alg)
	return np
}

// Rotate returns a new PolygonArea with every corner rotated by degrees
// around the polygon's bounding-box center, rounding to the nearest lattice
// point.
func (p *PolygonArea) Rotate(degrees float64) *PolygonArea {
	origin := p.bounds.Center()
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	out := make([]dunegrid.Point, len(p.corners))
	for i, c := range p.corners {
		dx := float64(c.X - origin.X)
		dy := float64(c.Y - origin.Y)
		nx := dx*cos - dy*sin
		ny := dx*sin + dy*cos
		out[i] = dunegrid.Pt(origin.X+int(math.Round(nx)), origin.Y+int(math.Round(ny)))
	}
	np, _ := NewPolygonArea(out, p.alg)
	return np
}

// FlipHorizontal returns a new PolygonArea mirrored across the vertical
// line x = axisX.
func (p *PolygonArea) FlipHorizontal(axisX int) *PolygonArea {
	out := make([]dunegrid.Point, len(p.corners))
	for i, c := range p.corners {
		out[i] = dunegrid.Pt(2*axisX-c.X, c.Y)
	}
	np, _ := NewPolygonArea(out, p.alg)
	return np
}

// FlipVertical returns a new PolygonArea mirrored across the horizontal
// line y = axisY.
func (p *PolygonArea) FlipVertical(axisY int) *PolygonArea {
	out := make([]dunegrid.Point, len(p.corners))
	for i, c := range p.corners {
		out[i] = dunegrid.Pt(c.X, 2*axisY-c.Y)
	}
	np, _ := NewPolygonArea(out, p.alg)
	return np
}

// Transpose returns a new PolygonArea with every corner's X and Y swapped
// around axisPoint.
func (p *PolygonArea) Transpose(axisPoint dunegrid.Point) *PolygonArea {
	out := make([]dunegrid.Point, len(p.corners))
	for i, c := range p.corners {
		dx := c.X - axisPoint.X
		dy := c.Y - axisPoint.Y
		out[i] = dunegrid.Pt(axisPoint.X+dy, axisPoint.Y+dx)
	}
	np, _ := NewPolygonArea(out, p.alg)
	return np
}

// Rectangle returns the PolygonArea for r's four corners in clockwise
// order starting at Min, matching spec.md's S3 scenario (r's Min and Max
// are both inclusive corners of the rectangle).
func Rectangle(r dunegrid.Rectangle, alg dunegrid.LineAlgorithm) *PolygonArea {
	corners := []dunegrid.Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
	p, _ := NewPolygonArea(corners, alg)
	return p
}

// Parallelogram returns a PolygonArea shaped as a parallelogram anchored at
// origin, width wide and height tall, slanting from the top edge if
// fromTop is true, otherwise from the bottom edge.
func Parallelogram(origin dunegrid.Point, width, height int, fromTop bool, alg dunegrid.LineAlgorithm) (*PolygonArea, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Msg: "parallelogram width and height must be positive"}
	}
	shear := height - 1
	var corners []dunegrid.Point
	if fromTop {
		corners = []dunegrid.Point{
			{X: origin.X + shear, Y: origin.Y},
			{X: origin.X + shear + width - 1, Y: origin.Y},
			{X: origin.X + width - 1, Y: origin.Y + height - 1},
			{X: origin.X, Y: origin.Y + height - 1},
		}
	} else {
		corners = []dunegrid.Point{
			{X: origin.X, Y: origin.Y},
			{X: origin.X + width - 1, Y: origin.Y},
			{X: origin.X + width - 1 + shear, Y: origin.Y + height - 1},
			{X: origin.X + shear, Y: origin.Y + height - 1},
		}
	}
	return NewPolygonArea(corners, alg)
}

// RegularPolygon returns a PolygonArea approximating a regular polygon of
// the given side count and radius, centered at center.
func RegularPolygon(center dunegrid.Point, sides int, radius float64, alg dunegrid.LineAlgorithm) (*PolygonArea, error) {
	if radius <= 0 {
		return nil, &ConfigError{Msg: "regular polygon radius must be positive"}
	}
	if sides < 3 {
		return nil, &ConfigError{Msg: fmt.Sprintf("regular polygon needs >= 3 sides, got %d", sides)}
	}
	corners := make([]dunegrid.Point, sides)
	for i := 0; i < sides; i++ {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		corners[i] = dunegrid.Pt(
			center.X+int(math.Round(radius*math.Cos(theta))),
			center.Y+int(math.Round(radius*math.Sin(theta))),
		)
	}
	return NewPolygonArea(corners, alg)
}

// RegularStar returns a PolygonArea alternating outerRadius and
// innerRadius corners around center, points tips in total.
func RegularStar(center dunegrid.Point, points int, outerRadius, innerRadius float64, alg dunegrid.LineAlgorithm) (*PolygonArea, error) {
	if outerRadius <= 0 || innerRadius <= 0 {
		return nil, &ConfigError{Msg: "star radii must be positive"}
	}
	if points < 2 {
		return nil, &ConfigError{Msg: fmt.Sprintf("star needs >= 2 points, got %d", points)}
	}
	n := points * 2
	corners := make([]dunegrid.Point, n)
	for i := 0; i < n; i++ {
		theta := math.Pi * float64(i) / float64(points)
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		corners[i] = dunegrid.Pt(
			center.X+int(math.Round(r*math.Cos(theta))),
			center.Y+int(math.Round(r*math.Sin(theta))),
		)
	}
	return NewPolygonArea(corners, alg)
}
