package entity

import "maze-game/game/types"

// Rect describes an axis-aligned rectangle by its center.
type Rect struct {
	Center types.Vec
	Width  float64
	Height float64
	// Static rects never move; the others fall once gravity is on.
	Static bool
	Tag    types.Tag
}

// Circle describes the dynamic ball.
type Circle struct {
	Center   types.Vec
	Radius   float64
	Velocity types.Vec
	Tag      types.Tag
}
