/*
Package maze generates perfect mazes over a rectangular grid.

A Maze stores two passage matrices. Verticals[r][c] is true when the
boundary between (r, c) and (r, c+1) is open; Horizontals[r][c] is true
when the boundary between (r, c) and (r+1, c) is open. A generated maze is
a spanning tree of the grid: every cell is reachable from every other cell
through exactly one path.
*/
package maze

import (
	"strings"
)

// Maze holds the passage matrices produced by the generator.
type Maze struct {
	Rows        int
	Cols        int
	Verticals   [][]bool // rows × (cols-1)
	Horizontals [][]bool // (rows-1) × cols
}

func newMaze(rows, cols int) *Maze {
	verticals := make([][]bool, rows)
	for i := range verticals {
		verticals[i] = make([]bool, max(cols-1, 0))
	}
	horizontals := make([][]bool, max(rows-1, 0))
	for i := range horizontals {
		horizontals[i] = make([]bool, cols)
	}
	return &Maze{
		Rows:        rows,
		Cols:        cols,
		Verticals:   verticals,
		Horizontals: horizontals,
	}
}

func (m *Maze) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < m.Rows && c.Col >= 0 && c.Col < m.Cols
}

// open removes the wall on side d of cell c. The neighbour must be in bounds.
func (m *Maze) open(c Cell, d Direction) {
	switch d {
	case Left:
		m.Verticals[c.Row][c.Col-1] = true
	case Right:
		m.Verticals[c.Row][c.Col] = true
	case Up:
		m.Horizontals[c.Row-1][c.Col] = true
	case Down:
		m.Horizontals[c.Row][c.Col] = true
	}
}

// IsOpen reports whether there is a passage on side d of cell c.
// Sides facing out of the grid are always closed.
func (m *Maze) IsOpen(c Cell, d Direction) bool {
	if !m.inBounds(c) || !m.inBounds(c.Step(d)) {
		return false
	}
	switch d {
	case Left:
		return m.Verticals[c.Row][c.Col-1]
	case Right:
		return m.Verticals[c.Row][c.Col]
	case Up:
		return m.Horizontals[c.Row-1][c.Col]
	case Down:
		return m.Horizontals[c.Row][c.Col]
	}
	return false
}

// OpenNeighbors returns the cells reachable from c in one step.
func (m *Maze) OpenNeighbors(c Cell) []Cell {
	var result []Cell
	for _, n := range candidates(c) {
		if m.IsOpen(c, n.Dir) {
			result = append(result, n.Cell)
		}
	}
	return result
}

// Passages counts the open boundaries in both matrices.
func (m *Maze) Passages() int {
	n := 0
	for _, row := range m.Verticals {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	for _, row := range m.Horizontals {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (m *Maze) Clone() *Maze {
	c := newMaze(m.Rows, m.Cols)
	for i := range m.Verticals {
		copy(c.Verticals[i], m.Verticals[i])
	}
	for i := range m.Horizontals {
		copy(c.Horizontals[i], m.Horizontals[i])
	}
	return c
}

// String draws the maze with ASCII box characters.
func (m *Maze) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", m.Cols) + "\n")

	for row := 0; row < m.Rows; row++ {
		b.WriteString("|")
		for col := 0; col < m.Cols; col++ {
			if m.IsOpen(Cell{Row: row, Col: col}, Right) {
				b.WriteString("    ")
			} else {
				b.WriteString("   |")
			}
		}
		b.WriteString("\n+")
		for col := 0; col < m.Cols; col++ {
			if m.IsOpen(Cell{Row: row, Col: col}, Down) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
