package maze

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source is the random source consumed by shuffling and start selection.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed value in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded generator. A zero seed picks one from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}

// Shuffle permutes s in place with Fisher–Yates and returns it. It draws
// exactly len(s) values from rng.
func Shuffle[T any](rng Source, s []T) []T {
	for i := len(s) - 1; i >= 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
	return s
}
