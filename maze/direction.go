package maze

// Direction names the side of a cell a neighbour lies on.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the row/column offset of a step in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// Cell addresses one grid unit by row and column.
type Cell struct {
	Row int
	Col int
}

// Step returns the cell adjacent to c in direction d. The result may lie
// outside the grid.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Neighbor is a candidate cell together with the direction taken to reach it.
type Neighbor struct {
	Cell
	Dir Direction
}

// candidates lists the four neighbours of c in up, right, down, left order.
func candidates(c Cell) []Neighbor {
	return []Neighbor{
		{Cell: c.Step(Up), Dir: Up},
		{Cell: c.Step(Right), Dir: Right},
		{Cell: c.Step(Down), Dir: Down},
		{Cell: c.Step(Left), Dir: Left},
	}
}
