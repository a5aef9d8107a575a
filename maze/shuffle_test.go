package maze

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls []int
}

func (s *countingSource) Intn(n int) int {
	s.calls = append(s.calls, n)
	return 0
}

func TestShuffleKeepsElements(t *testing.T) {
	rng := NewSource(7)
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	out := Shuffle(rng, in)

	assert.Same(t, &in[0], &out[0], "shuffle works in place")
	sorted := append([]int(nil), out...)
	sort.Ints(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
}

func TestShuffleDrawsFromLastIndexDown(t *testing.T) {
	src := &countingSource{}
	Shuffle(src, []string{"a", "b", "c", "d"})
	assert.Equal(t, []int{4, 3, 2, 1}, src.calls)
}

func TestShuffleEmpty(t *testing.T) {
	src := &countingSource{}
	assert.Empty(t, Shuffle(src, []int{}))
	assert.Empty(t, src.calls)
}

func TestShuffleUniform(t *testing.T) {
	const trials = 60000
	rng := NewSource(42)
	counts := make(map[string]int)

	for i := 0; i < trials; i++ {
		p := Shuffle(rng, []int{0, 1, 2})
		counts[fmt.Sprint(p)]++
	}

	require.Len(t, counts, 6, "every permutation of three elements shows up")
	expected := trials / 6
	for perm, n := range counts {
		assert.InDelta(t, expected, n, float64(expected)*0.05, "permutation %s", perm)
	}
}

func TestNewSourceIsReproducible(t *testing.T) {
	a, b := NewSource(99), NewSource(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
