package bloom

/*

# Fixed-capacity Bloom filter

This package provides a classic Bloom filter: a fixed-size bit array of m bits
into which each element is recorded by setting k derived positions, plus a
membership test that answers over those same positions.

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be present
  (false positives are possible).

A key that has been added always answers "maybe present". False negatives are
structurally impossible, because slot derivation is a pure function of the
element bytes and the fixed (m, k) parameters.

This is not a counting filter: there is no removal, and a set bit is never
cleared. It is not a scalable filter: m and k are fixed for the life of the
filter, chosen at construction. It does not persist or serialize itself; a
caller that needs persistence reads the raw bit array via BitSet together with
M and K, and owns that format.

## Slot derivation

Each element's k positions are drawn from a deterministic generator seeded by
the element's Murmur3-128 digest:

	h1, h2 := murmur3.Sum128(elem)
	rng := rand.New(rand.NewPCG(h1, h2))
	position[i] = rng.Uint64N(m)   // i = 0..k-1, in draw order

The generator is local to each call. There is no process-global generator
state, so calls never interfere with each other and the same element always
yields the same ordered position sequence under the same (m, k). Both Murmur3
and the math/rand/v2 PCG source are stable algorithms, so derived positions
are identical across process runs for identical element bytes.

The draws are independent and uniform over [0, m-1], with replacement. That is
exactly the model under which the usual estimate

	p = (1 - e^(-k*n/m))^k

is derived, which is why FalsePositiveProbability tracks observed rates closely
(see the calibration test).

## Sizing

For a planned insert count n, pick the bit count first and the draw count
second:

	m, _ := bloom.OptimalM(n, 0.01)  // 1% target false-positive rate
	k, _ := bloom.OptimalK(m, n)     // ceil((m/n) * ln 2)
	f, _ := bloom.New(m, k)

OptimalK minimizes the false-positive probability for a given m and n. Filters
keep working past their planned n; the false-positive rate just degrades, and
FalsePositiveProbability reports the current estimate.

## Concurrency

A Filter is a plain in-memory value with no internal locking. It is not safe
for concurrent use: callers that share a filter across goroutines must apply
their own discipline (a sync.RWMutex serializing Add against queries is the
usual shape). Every operation is a synchronous, bounded computation of O(k)
generator draws.

*/
