package sense

import (
	"sort"

	"github.com/fragmenta/dunegrid"
)

// RippleQuality selects how many of a cell's nearest neighbors contribute
// to its ripple light value: fewer neighbors produce a tighter beam, more
// produce a softer, wider glow.
type RippleQuality int

const (
	RippleTight     RippleQuality = iota // 1 neighbor
	RippleRegular                        // 2 neighbors
	RippleLoose                          // 3 neighbors
	RippleVeryLoose                      // 6 neighbors
)

func (q RippleQuality) neighborCount() int {
	switch q {
	case RippleTight:
		return 1
	case RippleLoose:
		return 3
	case RippleVeryLoose:
		return 6
	default:
		return 2
	}
}

// RippleSource propagates light via a FIFO flood fill: each cell's light is
// derived from its nearest already-lit neighbors, with resistance
// subtracted along the way, so light diffuses around corners and occluders
// rather than stopping at a hard shadow edge.
//
// Built from spec.md section 4.19 directly; no pack repository implements
// ripple-style lighting.
type RippleSource struct {
	SourceBase
	Quality   RippleQuality
	Metric    dunegrid.Distance
	nearLight []bool
}

// NewRippleSource returns a RippleSource with the given radius, intensity
// and spread quality, or a *ConfigError if radius or intensity is out of
// domain.
func NewRippleSource(radius int, intensity float64, quality RippleQuality) (*RippleSource, error) {
	base, err := NewSourceBase(radius, intensity)
	if err != nil {
		return nil, err
	}
	return &RippleSource{SourceBase: base, Quality: quality, Metric: dunegrid.Chebyshev}, nil
}

func (s *RippleSource) idx(p dunegrid.Point) int { return p.Y*s.size + p.X }

// CalculateLight fills the source's buffer with a ripple flood over its
// bound resistance view.
func (s *RippleSource) CalculateLight() {
	if !s.beginCalculate() {
		return
	}
	if len(s.nearLight) != s.size*s.size {
		s.nearLight = make([]bool, s.size*s.size)
	} else {
		for i := range s.nearLight {
			s.nearLight[i] = false
		}
	}
	centerPt := dunegrid.Pt(s.center, s.center)
	queue := []dunegrid.Point{centerPt}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if s.buffer.At(p) <= 0 || s.nearLight[s.idx(p)] {
			continue
		}
		for _, d := range dunegrid.EightWayDirections {
			n := p.To(d)
			if !s.buffer.Contains(n) {
				continue
			}
			w := s.worldAt(n)
			if s.resistance == nil || !s.resistance.Contains(w) {
				continue
			}
			dist := s.Metric.Calculate(centerPt, n)
			if dist > float64(s.radius) || !s.withinArc(n) {
				continue
			}
			light := s.nearRippleLight(n, centerPt)
			if light > s.buffer.At(n) {
				s.buffer.Set(n, light)
				if s.resistanceAt(n) < s.intensity {
					queue = append(queue, n)
				}
			}
		}
	}
}

// nearRippleLight computes n's new light value from its nearest already-lit
// neighbors (per spec.md section 4.19's NearRippleLight), and marks n in
// nearLight if it is opaque or surrounded mostly by already-near-light
// neighbors.
func (s *RippleSource) nearRippleLight(n, centerPt dunegrid.Point) float64 {
	type candidate struct {
		p    dunegrid.Point
		dist float64
	}
	var neighbors []candidate
	for _, d := range dunegrid.EightWayDirections {
		m := n.To(d)
		if !s.buffer.Contains(m) {
			continue
		}
		neighbors = append(neighbors, candidate{p: m, dist: s.Metric.Calculate(centerPt, m)})
	}
	// Stable sort: neighbors at equal distance keep EightWayDirections order
	// (North first, then clockwise), which breaks ties before truncation.
	sort.SliceStable(neighbors, func(i, j int) bool { return neighbors[i].dist < neighbors[j].dist })
	k := s.Quality.neighborCount()
	if k > len(neighbors) {
		k = len(neighbors)
	}
	neighbors = neighbors[:k]

	best := 0.0
	litCount, nearLitCount := 0, 0
	for _, c := range neighbors {
		if s.buffer.At(c.p) <= 0 {
			continue
		}
		litCount++
		if s.nearLight[s.idx(c.p)] {
			nearLitCount++
		}
		resistanceAtM := 0.0
		if c.p != centerPt {
			resistanceAtM = s.resistanceAt(c.p)
		}
		candidate := s.buffer.At(c.p) - s.Metric.Calculate(n, c.p)*s.decay - resistanceAtM
		if candidate > best {
			best = candidate
		}
	}
	if s.resistanceAt(n) >= s.intensity || (litCount > 0 && nearLitCount >= litCount) {
		s.nearLight[s.idx(n)] = true
	}
	return best
}
