package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrStartOutOfBounds = errors.New("start cell out of bounds")
)

// Option configures a Generator.
type Option func(*Generator)

// WithShuffler replaces the random neighbour ordering. The function must
// reorder the slice in place.
func WithShuffler(fn func([]Neighbor)) Option {
	return func(g *Generator) {
		g.shuffle = fn
	}
}

// Generator builds perfect mazes with a randomized depth-first backtracker.
type Generator struct {
	rng     Source
	shuffle func([]Neighbor)
}

// NewGenerator returns a Generator drawing randomness from rng.
func NewGenerator(rng Source, opts ...Option) *Generator {
	g := &Generator{rng: rng}
	g.shuffle = func(n []Neighbor) { Shuffle(g.rng, n) }
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateRandom generates a maze from a uniformly chosen start cell.
func (g *Generator) GenerateRandom(rows, cols int) (*Maze, error) {
	if err := validate(rows, cols); err != nil {
		return nil, err
	}
	start := Cell{Row: g.rng.Intn(rows), Col: g.rng.Intn(cols)}
	return g.Generate(rows, cols, start)
}

// frame is one level of the traversal: a visited cell and its shuffled
// neighbours, next pointing at the first one not yet tried.
type frame struct {
	cell      Cell
	neighbors []Neighbor
	next      int
}

// Generate carves a maze starting at start. The traversal visits cells in
// the same order as the recursive backtracker but keeps its own stack, so
// large grids cannot exhaust the goroutine stack.
func (g *Generator) Generate(rows, cols int, start Cell) (*Maze, error) {
	if err := validate(rows, cols); err != nil {
		return nil, err
	}

	grid := NewGrid(rows, cols)
	if !grid.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrStartOutOfBounds, start.Row, start.Col, rows, cols)
	}
	m := newMaze(rows, cols)

	stack := []*frame{g.enter(grid, start)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}

		n := top.neighbors[top.next]
		top.next++

		if !grid.InBounds(n.Row, n.Col) {
			continue
		}
		if grid.IsVisited(n.Row, n.Col) {
			continue
		}

		m.open(top.cell, n.Dir)
		stack = append(stack, g.enter(grid, n.Cell))
	}

	return m, nil
}

// enter marks c visited and prepares its randomly ordered neighbour list.
func (g *Generator) enter(grid *Grid, c Cell) *frame {
	grid.MarkVisited(c.Row, c.Col)
	neighbors := candidates(c)
	g.shuffle(neighbors)
	return &frame{cell: c, neighbors: neighbors}
}

func validate(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return nil
}
