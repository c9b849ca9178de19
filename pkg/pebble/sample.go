package pebble

import "math/rand/v2"

// DefaultSeed seeds the source used to subsample phi-step outcomes.
const DefaultSeed uint64 = 42

// Source is the pseudorandom source used for subsampling. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}

// NewSource returns a deterministic PCG source for seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func defaultSource() Source { return NewSource(DefaultSeed) }

// reservoir keeps a uniform sample of at most size items from a stream
// (Algorithm R). Items are copied into slots owned by the reservoir.
type reservoir struct {
	size  int
	src   Source
	seen  int
	items []Distribution
}

func newReservoir(size int, src Source) *reservoir {
	return &reservoir{size: size, src: src, items: make([]Distribution, 0, min(size, 64))}
}

func (r *reservoir) offer(d Distribution) {
	r.seen++
	if len(r.items) < r.size {
		r.items = append(r.items, d.Clone())
		return
	}
	if j := r.src.IntN(r.seen); j < r.size {
		copy(r.items[j], d)
	}
}

func (r *reservoir) sampled() bool { return r.seen > r.size }
