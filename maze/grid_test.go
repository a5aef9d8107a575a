package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	g := NewGrid(3, 4)

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			assert.False(t, g.IsVisited(r, c))
		}
	}

	g.MarkVisited(2, 3)
	assert.True(t, g.IsVisited(2, 3))
	assert.False(t, g.IsVisited(2, 2))

	t.Run("bounds", func(t *testing.T) {
		assert.True(t, g.InBounds(0, 0))
		assert.True(t, g.InBounds(2, 3))
		assert.False(t, g.InBounds(-1, 0))
		assert.False(t, g.InBounds(0, -1))
		assert.False(t, g.InBounds(3, 0))
		assert.False(t, g.InBounds(0, 4))
	})
}
