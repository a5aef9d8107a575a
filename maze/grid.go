package maze

// Grid tracks which cells have been visited during generation.
// Its dimensions never change after construction.
type Grid struct {
	rows    int
	cols    int
	visited [][]bool
}

// NewGrid returns a rows×cols grid with every cell unvisited.
func NewGrid(rows, cols int) *Grid {
	visited := make([][]bool, rows)
	for i := range visited {
		visited[i] = make([]bool, cols)
	}
	return &Grid{rows: rows, cols: cols, visited: visited}
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsVisited reports whether (row, col) has been visited. Callers check bounds first.
func (g *Grid) IsVisited(row, col int) bool {
	return g.visited[row][col]
}

// MarkVisited marks (row, col) as visited. Callers check bounds first.
func (g *Grid) MarkVisited(row, col int) {
	g.visited[row][col] = true
}
