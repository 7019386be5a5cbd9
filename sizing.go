package bloom

import "math"

// OptimalK returns the draw count k that minimizes the false-positive
// probability of an m-bit filter loaded with n elements:
//
//	k = ceil((m / n) * ln 2)
//
// The result is coerced to at least 1; for any m >= 1 and n >= 1 the formula
// is positive, so the coercion only covers float underflow at extreme n/m
// ratios. OptimalK is a pure function for callers choosing k ahead of New; the
// filter never calls it itself.
func OptimalK(m, n uint) (uint, error) {
	if m == 0 {
		return 0, ErrBadM
	}
	if n == 0 {
		return 0, ErrBadN
	}
	k := uint(math.Ceil(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}
	return k, nil
}

// OptimalM returns the bit count m at which an optimally-hashed filter loaded
// with n elements reaches the target false-positive rate p:
//
//	m = ceil(-n * ln p / (ln 2)^2)
//
// p must lie in the open interval (0, 1). The result is coerced to at least 1.
func OptimalM(n uint, p float64) (uint, error) {
	if n == 0 {
		return 0, ErrBadN
	}
	if p <= 0 || p >= 1 {
		return 0, ErrBadP
	}
	m := uint(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m < 1 {
		m = 1
	}
	return m, nil
}
