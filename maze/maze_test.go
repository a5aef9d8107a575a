package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOpenSymmetric(t *testing.T) {
	m, err := NewGenerator(NewSource(21)).Generate(6, 9, Cell{Row: 2, Col: 2})
	require.NoError(t, err)

	for r, row := range m.Verticals {
		for c, open := range row {
			assert.Equal(t, open, m.IsOpen(Cell{r, c}, Right))
			assert.Equal(t, open, m.IsOpen(Cell{r, c + 1}, Left))
		}
	}
	for r, row := range m.Horizontals {
		for c, open := range row {
			assert.Equal(t, open, m.IsOpen(Cell{r, c}, Down))
			assert.Equal(t, open, m.IsOpen(Cell{r + 1, c}, Up))
		}
	}

	assert.False(t, m.IsOpen(Cell{0, 0}, Up))
	assert.False(t, m.IsOpen(Cell{0, 0}, Left))
	assert.False(t, m.IsOpen(Cell{5, 8}, Down))
	assert.False(t, m.IsOpen(Cell{5, 8}, Right))
}

func TestClone(t *testing.T) {
	m, err := NewGenerator(NewSource(4)).Generate(3, 3, Cell{})
	require.NoError(t, err)

	c := m.Clone()
	assert.Equal(t, m, c)

	c.Verticals[0][0] = !c.Verticals[0][0]
	assert.NotEqual(t, m.Verticals[0][0], c.Verticals[0][0])
}

func TestString(t *testing.T) {
	m := newMaze(1, 2)
	assert.Equal(t, "+---+---+\n|   |   |\n+---+---+\n", m.String())

	m.open(Cell{0, 0}, Right)
	assert.Equal(t, "+---+---+\n|       |\n+---+---+\n", m.String())
}

func TestSolve(t *testing.T) {
	m, err := NewGenerator(NewSource(8)).Generate(10, 12, Cell{})
	require.NoError(t, err)

	from, to := Cell{0, 0}, Cell{9, 11}
	path := m.Solve(from, to)
	require.NotEmpty(t, path)

	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Contains(t, m.OpenNeighbors(path[i-1]), path[i])
	}

	assert.Equal(t, []Cell{from}, m.Solve(from, from))
	assert.Nil(t, m.Solve(from, Cell{10, 0}))
}
