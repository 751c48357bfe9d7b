package gen

// alwaysRNG is a deterministic dunegrid.RNG test double reporting a fixed
// PercentageCheck and Bool outcome, mid-range Intn/Float64/IntRange values,
// and a Shuffle that leaves the order unchanged, used where a
// test needs to pin one random decision without needing a full math/rand
// stream.
type alwaysRNG struct {
	fill bool
}

func (r alwaysRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return n / 2
}
func (r alwaysRNG) Float64() float64 { return 0.5 }
func (r alwaysRNG) Bool() bool       { return r.fill }
func (r alwaysRNG) PercentageCheck(p float64) bool {
	return r.fill
}
func (r alwaysRNG) IntRange(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + (hi-lo)/2
}
func (r alwaysRNG) Shuffle(n int, swap func(i, j int)) {}
