package gen

import (
	"github.com/fragmenta/dunegrid"
	"github.com/fragmenta/dunegrid/area"
)

// PointSelector picks a pair of connection points, one from each of two
// areas, for a tunnel creator to join.
type PointSelector func(a, b *area.MultiArea) (dunegrid.Point, dunegrid.Point)

// NearestPointSelector returns a PointSelector that exhaustively searches
// both areas for the closest pair of points under metric, the first
// minimum encountered winning ties (spec.md section 4.7's tie-break rule).
func NearestPointSelector(metric dunegrid.Distance) PointSelector {
	return func(a, b *area.MultiArea) (dunegrid.Point, dunegrid.Point) {
		var bestA, bestB dunegrid.Point
		best := -1.0
		a.Iter(func(pa dunegrid.Point) {
			b.Iter(func(pb dunegrid.Point) {
				d := metric.Calculate(pa, pb)
				if best < 0 || d < best {
					best = d
					bestA, bestB = pa, pb
				}
			})
		})
		return bestA, bestB
	}
}
