package interview

import "math/rand"

// Rand is the randomness source used for phrase variety. It is injected so
// tests can pin phrase selection.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a Rand backed by math/rand with the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// pick returns a random element of options, or "" when options is empty.
func pick(rng Rand, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rng.Intn(len(options))]
}
