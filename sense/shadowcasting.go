package sense

import (
	"github.com/fragmenta/dunegrid"
)

// ShadowcastingSource propagates light via recursive shadowcasting: eight
// symmetric octant sweeps, each a row-by-row scan bounded by a shrinking
// slope interval, recursing on newly discovered blocked sub-intervals.
//
// Built from spec.md section 4.18 directly; no pack repository implements
// recursive shadowcasting (the teacher's rl.FOV instead computes a
// Dijkstra-like cost map one ring at a time, a different algorithm shape
// entirely, so only the struct/embedding idiom is carried over from it).
type ShadowcastingSource struct {
	SourceBase
	// Metric selects the falloff and radius-bound distance, matching
	// RippleSource's own Metric field. Defaults to Euclidean.
	Metric dunegrid.Distance
}

// NewShadowcastingSource returns a ShadowcastingSource with the given
// radius and intensity, or a *ConfigError if either is out of domain.
func NewShadowcastingSource(radius int, intensity float64) (*ShadowcastingSource, error) {
	base, err := NewSourceBase(radius, intensity)
	if err != nil {
		return nil, err
	}
	return &ShadowcastingSource{SourceBase: base, Metric: dunegrid.Euclidean}, nil
}

type octantTransform struct{ xx, xy, yx, yy int }

var octantTransforms = [8]octantTransform{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// CalculateLight fills the source's buffer with a recursive-shadowcasting
// sweep over its bound resistance view.
func (s *ShadowcastingSource) CalculateLight() {
	if !s.beginCalculate() {
		return
	}
	for _, t := range octantTransforms {
		s.castOctant(1, 1.0, 0.0, t)
	}
}

// castOctant sweeps rows [row, radius] of one octant within the slope
// interval [end, start], illuminating visible cells and recursing into
// sub-intervals revealed past a blocking cell.
func (s *ShadowcastingSource) castOctant(row int, start, end float64, t octantTransform) {
	if start < end {
		return
	}
	newStart := 0.0
	blocked := false
	for distance := row; distance <= s.radius && !blocked; distance++ {
		dy := -distance
		for dx := -distance; dx <= 0; dx++ {
			lx := s.center + dx*t.xx + dy*t.xy
			ly := s.center + dx*t.yx + dy*t.yy
			lp := dunegrid.Pt(lx, ly)

			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}

			if !s.buffer.Contains(lp) {
				continue
			}
			deltaRadius := s.Metric.Calculate(dunegrid.Point{}, dunegrid.Pt(dx, dy))
			if deltaRadius <= float64(s.radius) && s.withinArc(lp) {
				s.buffer.Set(lp, s.intensity-s.decay*deltaRadius)
			}

			isWall := s.resistanceAt(lp) >= s.intensity
			switch {
			case blocked && isWall:
				newStart = rightSlope
				continue
			case blocked && !isWall:
				blocked = false
				start = newStart
			case !blocked && isWall && distance < s.radius:
				blocked = true
				s.castOctant(distance+1, start, leftSlope, t)
				newStart = rightSlope
			}
		}
	}
}
