package triangle

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Generate returns a triangle of the given rows with values drawn uniformly
// from [lo, hi]. The same seed always yields the same triangle.
//
// Errors: ErrBadInput if rows < 1, lo > hi, or hi-lo+1 does not fit in an int.
func Generate(rows int, seed int64, lo, hi int) (Triangle, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: rows must be positive, got %d", ErrBadInput, rows)
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: lo %d > hi %d", ErrBadInput, lo, hi)
	}
	if span := hi - lo; span < 0 || span == math.MaxInt {
		return nil, fmt.Errorf("%w: range [%d, %d] is too wide", ErrBadInput, lo, hi)
	}
	rng := rngFromSeed(seed)
	t := make(Triangle, rows)
	for i := range t {
		t[i] = make([]int, i+1)
		for k := range t[i] {
			t[i][k] = lo + rng.Intn(hi-lo+1)
		}
	}
	return t, nil
}
