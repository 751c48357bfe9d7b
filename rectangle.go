package dunegrid

// Rectangle is an inclusive-bounds axis-aligned rectangle: both Min and Max
// are part of the rectangle, unlike the image.Rectangle half-open
// convention.
type Rectangle struct {
	Min, Max Point
}

// NewRectangle returns the inclusive rectangle with corners (x0,y0) and
// (x1,y1), normalizing so that Min <= Max on both axes.
func NewRectangle(x0, y0, x1, y1 int) Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rectangle{Min: Point{x0, y0}, Max: Point{x1, y1}}
}

// RectangleWH returns the inclusive rectangle of the given width and height
// with its minimum corner at origin.
func RectangleWH(origin Point, w, h int) Rectangle {
	return Rectangle{Min: origin, Max: Point{origin.X + w - 1, origin.Y + h - 1}}
}

// Width returns the number of columns covered by the rectangle.
func (r Rectangle) Width() int {
	return r.Max.X - r.Min.X + 1
}

// Height returns the number of rows covered by the rectangle.
func (r Rectangle) Height() int {
	return r.Max.Y - r.Min.Y + 1
}

// MinExtent returns the minimum corner.
func (r Rectangle) MinExtent() Point {
	return r.Min
}

// MaxExtent returns the maximum corner.
func (r Rectangle) MaxExtent() Point {
	return r.Max
}

// Center returns the rectangle's center point, using integer division (so
// rounded toward Min for non-negative coordinates, toward zero in general).
func (r Rectangle) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies within the rectangle's inclusive bounds.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Expand grows the rectangle outward by dx on the left/right edges and dy on
// the top/bottom edges.
func (r Rectangle) Expand(dx, dy int) Rectangle {
	return Rectangle{
		Min: Point{r.Min.X - dx, r.Min.Y - dy},
		Max: Point{r.Max.X + dx, r.Max.Y + dy},
	}
}

// Positions returns every position covered by the rectangle, in row-major
// order.
func (r Rectangle) Positions() []Point {
	ps := make([]Point, 0, r.Width()*r.Height())
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			ps = append(ps, Point{x, y})
		}
	}
	return ps
}

// PerimeterPositions returns the positions on the rectangle's border, in
// clockwise order starting at Min.
func (r Rectangle) PerimeterPositions() []Point {
	if r.Width() <= 0 || r.Height() <= 0 {
		return nil
	}
	if r.Width() == 1 || r.Height() == 1 {
		return r.Positions()
	}
	ps := make([]Point, 0, 2*r.Width()+2*r.Height()-4)
	for x := r.Min.X; x <= r.Max.X; x++ {
		ps = append(ps, Point{x, r.Min.Y})
	}
	for y := r.Min.Y + 1; y <= r.Max.Y; y++ {
		ps = append(ps, Point{r.Max.X, y})
	}
	for x := r.Max.X - 1; x >= r.Min.X; x-- {
		ps = append(ps, Point{x, r.Max.Y})
	}
	for y := r.Max.Y - 1; y >= r.Min.Y+1; y-- {
		ps = append(ps, Point{r.Min.X, y})
	}
	return ps
}

// IsOnSide reports whether p lies on the rectangle edge named by a cardinal
// direction (North = top row, South = bottom row, East = right column, West
// = left column). Any other direction, including None, reports false.
func (r Rectangle) IsOnSide(p Point, dir Direction) bool {
	if !r.Contains(p) {
		return false
	}
	switch dir {
	case North:
		return p.Y == r.Min.Y
	case South:
		return p.Y == r.Max.Y
	case East:
		return p.X == r.Max.X
	case West:
		return p.X == r.Min.X
	default:
		return false
	}
}
