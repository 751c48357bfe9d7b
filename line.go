package dunegrid

// LineAlgorithm selects a line rasterization strategy for PolygonArea edges
// and DirectLine tunnel carving.
type LineAlgorithm int

const (
	// BresenhamLine rasterizes using Bresenham's algorithm (diagonal-biased,
	// exactly one cell per step along the longer axis).
	BresenhamLine LineAlgorithm = iota
	// OrthogonalLine rasterizes axis-first: it walks one axis fully, then
	// the other, producing an L-shaped or strictly orthogonal path. For
	// perfectly horizontal or vertical segments it is identical to
	// Bresenham.
	OrthogonalLine
)

// Line rasterizes a line segment from a to b using the given algorithm,
// including both endpoints.
//
// No repository in the retrieval pack implements line rasterization
// (gruid's FOV computes reachability costs directly, without ever
// enumerating a line of points), so this is built directly from spec.md
// section 1's line-rasterization requirement, in the flat free-function
// style of the teacher's own small geometry helpers (paths/distance.go).
func Line(a, b Point, alg LineAlgorithm) []Point {
	if alg == OrthogonalLine {
		return orthogonalLine(a, b)
	}
	return bresenhamLine(a, b)
}

func bresenhamLine(a, b Point) []Point {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	dx := iabs(x1 - x0)
	dy := -iabs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	var pts []Point
	x, y := x0, y0
	for {
		pts = append(pts, Point{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return pts
}

func orthogonalLine(a, b Point) []Point {
	var pts []Point
	x, y := a.X, a.Y
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	for x != b.X {
		pts = append(pts, Point{x, y})
		x += sx
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	for y != b.Y {
		pts = append(pts, Point{x, y})
		y += sy
	}
	pts = append(pts, Point{x, y})
	return pts
}
