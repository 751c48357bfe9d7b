// Package dunegrid provides the geometry primitives, typed array-backed grids
// and math helpers shared by the area, gen and sense packages: points,
// rectangles, compass directions, adjacency rules, distance metrics and a
// small array-backed grid implementation.
package dunegrid

import "fmt"

// Point is an immutable (X, Y) lattice coordinate.
type Point struct {
	X, Y int
}

// Pt is a short constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Shift returns p translated by (dx, dy).
func (p Point) Shift(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func imax(x, y int) int {
	if x > y {
		return x
	}
	return y
}

func imin(x, y int) int {
	if x < y {
		return x
	}
	return y
}
