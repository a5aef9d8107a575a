// Package layout turns a generated maze into physical body descriptors
// scaled to a viewport.
package layout

import (
	"math"
	"maze-game/game/entity"
	"maze-game/game/types"
	"maze-game/maze"
)

const (
	WallThickness     = 1.0
	BoundaryThickness = 4.0
	GoalScale         = 0.7
)

// Layout is everything the physics world needs for one maze.
type Layout struct {
	Width      float64
	Height     float64
	CellWidth  float64
	CellHeight float64
	Boundaries []entity.Rect
	Walls      []entity.Rect
	Goal       entity.Rect
	Ball       entity.Circle
}

// Build maps m onto a width×height viewport.
func Build(m *maze.Maze, width, height float64) Layout {
	cellW := width / float64(m.Cols)
	cellH := height / float64(m.Rows)

	return Layout{
		Width:      width,
		Height:     height,
		CellWidth:  cellW,
		CellHeight: cellH,
		Boundaries: Boundaries(width, height),
		Walls:      MapToWalls(m.Verticals, m.Horizontals, cellW, cellH),
		Goal: entity.Rect{
			Center: types.Vec{X: width - cellW/2, Y: height - cellH/2},
			Width:  cellW * GoalScale,
			Height: cellH * GoalScale,
			Static: true,
			Tag:    types.TagGoal,
		},
		Ball: entity.Circle{
			Center: types.Vec{X: cellW / 2, Y: cellH / 2},
			Radius: math.Min(cellW, cellH) / 4,
			Tag:    types.TagBall,
		},
	}
}

// Boundaries frames the viewport with four static walls: top, bottom,
// left, right.
func Boundaries(width, height float64) []entity.Rect {
	frame := func(x, y, w, h float64) entity.Rect {
		return entity.Rect{
			Center: types.Vec{X: x, Y: y},
			Width:  w,
			Height: h,
			Static: true,
			Tag:    types.TagBoundary,
		}
	}
	return []entity.Rect{
		frame(width/2, 0, width, BoundaryThickness),
		frame(width/2, height, width, BoundaryThickness),
		frame(0, height/2, BoundaryThickness, height),
		frame(width, height/2, BoundaryThickness, height),
	}
}

// MapToWalls emits one thin static segment per closed boundary,
// horizontal walls first. The matrices are only read.
func MapToWalls(verticals, horizontals [][]bool, cellWidth, cellHeight float64) []entity.Rect {
	var walls []entity.Rect

	for row, cols := range horizontals {
		for col, open := range cols {
			if open {
				continue
			}
			walls = append(walls, entity.Rect{
				Center: types.Vec{
					X: float64(col)*cellWidth + cellWidth/2,
					Y: float64(row)*cellHeight + cellHeight,
				},
				Width:  cellWidth,
				Height: WallThickness,
				Static: true,
				Tag:    types.TagWall,
			})
		}
	}

	for row, cols := range verticals {
		for col, open := range cols {
			if open {
				continue
			}
			walls = append(walls, entity.Rect{
				Center: types.Vec{
					X: float64(col)*cellWidth + cellWidth,
					Y: float64(row)*cellHeight + cellHeight/2,
				},
				Width:  WallThickness,
				Height: cellHeight,
				Static: true,
				Tag:    types.TagWall,
			})
		}
	}

	return walls
}

// Statics lists the static bodies in registration order.
func (l Layout) Statics() []entity.Rect {
	statics := make([]entity.Rect, 0, len(l.Boundaries)+len(l.Walls)+1)
	statics = append(statics, l.Boundaries...)
	statics = append(statics, l.Walls...)
	return append(statics, l.Goal)
}

// CellCenter returns the viewport position of a cell's center.
func (l Layout) CellCenter(c maze.Cell) types.Vec {
	return types.Vec{
		X: float64(c.Col)*l.CellWidth + l.CellWidth/2,
		Y: float64(c.Row)*l.CellHeight + l.CellHeight/2,
	}
}

// CellAt returns the cell containing p, clamped to the grid.
func (l Layout) CellAt(p types.Vec, rows, cols int) maze.Cell {
	col := int(p.X / l.CellWidth)
	row := int(p.Y / l.CellHeight)
	return maze.Cell{
		Row: min(max(row, 0), rows-1),
		Col: min(max(col, 0), cols-1),
	}
}
