package ptgeom

import (
	"sync"

	"github.com/MichaelTJones/pcg"
)

// pcgSequence selects the PCG32 stream. Any odd constant will do.
const pcgSequence = 0xda3e39cb94b95bdb

// Rand is a source of uniformly distributed random numbers. It is safe for
// concurrent use.
type Rand struct {
	mu sync.Mutex
	r  *pcg.PCG32
}

var defaultRand = NewRand(0x853c49e6748fea9b)

// NewRand returns a random source seeded with seed. Sources with the same
// seed produce the same sequence.
func NewRand(seed uint64) *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(seed)
	return r
}

// Seed reseeds the source.
func (r *Rand) Seed(seed uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.Seed(seed, pcgSequence)
}

// Float64 returns a number in [0, 1].
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float64(r.r.Random()) / (1<<32 - 1)
}

// Range returns a number uniformly sampled from [min(a, b), max(a, b)].
func (r *Rand) Range(a, b float64) float64 {
	lo, hi := min(a, b), max(a, b)
	return lo + r.Float64()*(hi-lo)
}
