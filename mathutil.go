package dunegrid

import "math"

// WrapMod returns x modulo m, wrapped into [0, m) even for negative x.
func WrapMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// WrapModF returns x modulo m, wrapped into [0, m) even for negative x, for
// floating point values. FastAtan2 uses it to wrap its fractional-circle
// result into [0, 1).
func WrapModF(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// RoundToMultiple rounds x to the nearest multiple of m (m > 0), rounding
// half away from zero.
func RoundToMultiple(x float64, m int) int {
	if m <= 0 {
		return int(math.Round(x))
	}
	fm := float64(m)
	return int(math.Round(x/fm)) * m
}

// FastAtan2 is a scaled atan2 approximation mapping the angle of (y, x) to
// [0, 1), suitable for angle bucketing where a full math.Atan2 plus
// normalization would be overkill. 0 corresponds to the positive X axis, and
// the value increases clockwise when Y grows downward (this module's grid
// convention).
//
// spec.md section 2 asks for a "fast scaled atan2 approximation mapping to
// [0,1)". No pack repo implements one (gruid's FOV never needs an angle, it
// works by cost propagation), so this follows the well known
// polynomial-free octant approximation: a linear ratio inside each octant,
// which is accurate to within about 0.011 turns (roughly 4 degrees) and
// avoids a transcendental call.
func FastAtan2(y, x float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	ax, ay := math.Abs(x), math.Abs(y)
	var val float64
	switch {
	case x > 0 && y >= 0 && ax >= ay:
		val = eighthRatio(ay, ax)
	case x >= 0 && y > 0 && ay > ax:
		val = 0.25 - eighthRatio(ax, ay)
	case x <= 0 && y > 0 && ay >= ax:
		val = 0.25 + eighthRatio(ax, ay)
	case x < 0 && y >= 0 && ax > ay:
		val = 0.5 - eighthRatio(ay, ax)
	case x < 0 && y <= 0 && ax >= ay:
		val = 0.5 + eighthRatio(ay, ax)
	case x <= 0 && y < 0 && ay > ax:
		val = 0.75 - eighthRatio(ax, ay)
	case x >= 0 && y < 0 && ay >= ax:
		val = 0.75 + eighthRatio(ax, ay)
	default: // x > 0 && y <= 0 && ax > ay
		val = 1.0 - eighthRatio(ay, ax)
	}
	return WrapModF(val, 1.0)
}

// eighthRatio returns 0.125 * num/den (0 if den is 0), the linear
// within-octant fraction used by FastAtan2.
func eighthRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return 0.125 * (num / den)
}
