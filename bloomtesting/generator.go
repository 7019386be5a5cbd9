// Package bloomtesting generates reproducible key material for filter tests.
//
// The statistical tests in the root package need two guarantees from their
// test data: keys must be distinct (so "fresh keys not in the added set" is a
// constructive fact, not a probabilistic one), and runs must be repeatable (so
// an observed false-positive count is the same from run to run). A Generator
// provides both: every key carries a monotonic ordinal, and all randomness
// comes from a source seeded by the caller's Config.
package bloomtesting

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Config seeds a Generator. It is normal to force Seed to some fixed value so
// that the generated keys are the same from run to run.
type Config struct {
	Seed        int64
	LabelPrefix string
}

// Generator yields distinct keys deterministically from its Config. It is not
// safe for concurrent use.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	ordinal uint64
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Next returns the next key: label prefix, ordinal, and a UUID drawn from the
// seeded source. The ordinal makes every key from one generator distinct
// regardless of the UUID bytes. math/rand sources never fail reads, so the
// UUID error is discarded.
func (g *Generator) Next() []byte {
	id, _ := uuid.NewRandomFromReader(g.rng)
	key := fmt.Appendf(nil, "%s/%d/%s", g.cfg.LabelPrefix, g.ordinal, id)
	g.ordinal++
	return key
}

// Distinct returns the next n keys as a batch.
func (g *Generator) Distinct(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = g.Next()
	}
	return keys
}
