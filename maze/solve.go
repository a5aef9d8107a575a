package maze

// Solve returns the path from one cell to another through open passages,
// both ends included, or nil when either cell is outside the maze.
func (m *Maze) Solve(from, to Cell) []Cell {
	if !m.inBounds(from) || !m.inBounds(to) {
		return nil
	}

	queue := []Cell{from}
	cameFrom := make(map[Cell]Cell)
	visited := map[Cell]bool{from: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == to {
			path := []Cell{}
			for curr != from {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, from)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, next := range m.OpenNeighbors(curr) {
			if !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
