package bloom

import "math"

// FalsePositiveProbability returns the theoretical false-positive probability
// of the filter at its current load:
//
//	p = (1 - e^(-k*n/m))^k
//
// using the live N, so the estimate degrades as elements are added. It is an
// estimate of the rate for elements never added, not a measurement; an empty
// filter reports 0.
func (f *Filter) FalsePositiveProbability() float64 {
	k := float64(f.k)
	n := float64(f.n)
	m := float64(f.m)
	return math.Pow(1-math.Exp(-k*n/m), k)
}

// FillRatio returns the fraction of bits currently set, in [0, 1]. A healthy
// filter at its planned load sits near 0.5; values close to 1 mean the filter
// is past capacity and MaybeContains answers are losing their value.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}
