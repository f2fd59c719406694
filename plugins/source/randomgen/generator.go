package randomgen

import (
	"math/rand"
	"time"
)

// generator is the session-scoped random source. Values are uniform in
// [0, bound). Not safe for concurrent use; the plugin serializes all
// state-mutating calls around it. Generation never fails once seeded.
type generator struct {
	rng   *rand.Rand
	bound int64
	seq   uint64
}

func newGenerator(bound, seed int64, fixed bool) *generator {
	if !fixed {
		seed = time.Now().UnixNano()
	}
	return &generator{
		rng:   rand.New(rand.NewSource(seed)),
		bound: bound,
	}
}

// next returns one value with the sequence number assigned to it.
func (g *generator) next() (seq uint64, v int64) {
	seq = g.seq
	g.seq++
	return seq, g.rng.Int63n(g.bound)
}
