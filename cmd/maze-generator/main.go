package main

import (
	"flag"
	"fmt"
	"maze-game/maze"
	"os"
	"strings"
	"time"
)

func main() {
	rows := flag.Int("rows", 15, "Maze rows")
	cols := flag.Int("cols", 10, "Maze columns")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	solve := flag.Bool("solve", false, "Mark the path from the top-left to the bottom-right cell")
	flag.Parse()

	startT := time.Now()
	m, err := maze.NewGenerator(maze.NewSource(*seed)).GenerateRandom(*rows, *cols)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	dur := time.Since(startT)

	fmt.Printf("Generated %dx%d in %v, %d passages\n", m.Rows, m.Cols, dur, m.Passages())

	var path []maze.Cell
	if *solve {
		path = m.Solve(maze.Cell{}, maze.Cell{Row: m.Rows - 1, Col: m.Cols - 1})
		fmt.Printf("Solution Path Length: %d steps\n", len(path))
	}

	fmt.Print(draw(m, path))
}

// draw renders the maze like Maze.String, marking path cells.
func draw(m *maze.Maze, path []maze.Cell) string {
	onPath := make(map[maze.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("---+", m.Cols) + "\n")

	for row := 0; row < m.Rows; row++ {
		b.WriteString("|")
		for col := 0; col < m.Cols; col++ {
			c := maze.Cell{Row: row, Col: col}
			if onPath[c] {
				b.WriteString(" • ")
			} else {
				b.WriteString("   ")
			}
			if m.IsOpen(c, maze.Right) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n+")
		for col := 0; col < m.Cols; col++ {
			if m.IsOpen(maze.Cell{Row: row, Col: col}, maze.Down) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
