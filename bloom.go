package bloom

import (
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
	"github.com/spaolacci/murmur3"
)

// New returns an empty filter of exactly m bits probed with k draws per
// element. Both parameters are fixed for the life of the filter. m and k must
// be at least 1.
func New(m, k uint) (*Filter, error) {
	if m == 0 {
		return nil, ErrBadM
	}
	if k == 0 {
		return nil, ErrBadK
	}
	return &Filter{m: m, k: k, bits: bitset.New(m)}, nil
}

// slotSource returns the deterministic generator whose successive draws are
// elem's slot positions. The generator is seeded from the element's
// Murmur3-128 digest and is local to the call; the same elem always yields the
// same draw sequence.
func slotSource(elem []byte) *rand.Rand {
	h1, h2 := murmur3.Sum128(elem)
	return rand.New(rand.NewPCG(h1, h2))
}

// Add records elem in the filter, setting its k derived positions and
// incrementing N. Adding an element again sets no new bits but still
// increments N.
func (f *Filter) Add(elem []byte) {
	rng := slotSource(elem)
	for i := uint(0); i < f.k; i++ {
		f.bits.Set(uint(rng.Uint64N(uint64(f.m))))
	}
	f.n++
}

// AddAll records each element in argument order. It is equivalent to calling
// Add once per element.
func (f *Filter) AddAll(elems ...[]byte) {
	for _, elem := range elems {
		f.Add(elem)
	}
}

// MaybeContains checks membership for elem.
//
// Returns false if the element is definitely not present.
// Returns true if the element may be present: always for an element that was
// added, and with probability near FalsePositiveProbability for one that was
// not.
func (f *Filter) MaybeContains(elem []byte) bool {
	rng := slotSource(elem)
	for i := uint(0); i < f.k; i++ {
		if !f.bits.Test(uint(rng.Uint64N(uint64(f.m)))) {
			return false
		}
	}
	return true
}

// MaybeContainsAll checks membership for every element, returning false at
// the first one that is definitely not present. With no elements it returns
// true. It has no side effects.
func (f *Filter) MaybeContainsAll(elems ...[]byte) bool {
	for _, elem := range elems {
		if !f.MaybeContains(elem) {
			return false
		}
	}
	return true
}
