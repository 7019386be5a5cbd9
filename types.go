package bloom

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrBadM = errors.New("bloom: m invalid, a filter needs at least one bit")
	ErrBadK = errors.New("bloom: k invalid, a filter needs at least one hash draw")
	ErrBadN = errors.New("bloom: n invalid, sizing needs at least one expected element")
	ErrBadP = errors.New("bloom: p invalid, target rate must be in the open interval (0, 1)")
)

// Filter is a fixed-capacity Bloom filter. m and k are fixed at construction;
// n counts Add calls, including duplicates. The zero value is not usable, use
// New.
type Filter struct {
	m    uint
	k    uint
	n    uint64
	bits *bitset.BitSet
}

// M returns the number of bits in the filter.
func (f *Filter) M() uint { return f.m }

// K returns the number of positions derived per element.
func (f *Filter) K() uint { return f.k }

// N returns the number of elements added so far. Duplicate adds are counted
// each time; the filter does not deduplicate.
func (f *Filter) N() uint64 { return f.n }

// BitSet returns the filter's backing bit array, for diagnostics or for an
// external persistence layer storing it alongside M and K. The returned set is
// live, not a copy: mutating it breaks the filter's invariants, and that
// burden is on the caller.
func (f *Filter) BitSet() *bitset.BitSet { return f.bits }
