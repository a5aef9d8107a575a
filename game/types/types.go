package types

// Tag identifies a body's role to collision handling.
type Tag string

const (
	TagWall     Tag = "wall"
	TagGoal     Tag = "goal"
	TagBall     Tag = "ball"
	TagBoundary Tag = "boundary"
)

// Vec is a 2D vector in viewport units, Y pointing down.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Phase of a single run.
type Phase int

const (
	Playing Phase = iota
	Won
)

func (p Phase) String() string {
	if p == Won {
		return "WON"
	}
	return "PLAYING"
}

// Key is an engine-independent key identifier.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyReset
	KeyHint
)
