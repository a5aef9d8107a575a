// Package physics registers maze bodies with a Chipmunk space and reports
// collisions by role tag.
package physics

import (
	"maze-game/game/entity"
	"maze-game/game/types"

	"github.com/jakecoffman/cp"
)

const (
	collisionBall cp.CollisionType = iota + 1
	collisionWall
	collisionGoal
	collisionBoundary
)

const (
	ballMass       = 1.0
	wallMass       = 1.0
	ballElasticity = 0.4
	wallElasticity = 0.4
	friction       = 0.1
)

// Body is a read-only snapshot used for drawing.
type Body struct {
	Tag      types.Tag
	Position types.Vec
	Angle    float64
	Width    float64
	Height   float64
	Radius   float64
	Static   bool
}

type rectBody struct {
	body *cp.Body
	rect entity.Rect
}

// World owns the space and every body registered for one maze.
type World struct {
	space       *cp.Space
	ball        *cp.Body
	circle      entity.Circle
	rects       []rectBody
	onCollision func(a, b types.Tag)

	// the space is locked during Step, so structural changes wait here
	pending  []func()
	released bool
}

// NewWorld returns an empty space without gravity. damping is the fraction
// of velocity a body keeps each second.
func NewWorld(damping float64) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	space.SetDamping(damping)

	w := &World{space: space}

	handler := space.NewWildcardCollisionHandler(collisionBall)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Shapes()
		if w.onCollision != nil {
			w.onCollision(tagOf(a), tagOf(b))
		}
		return true
	}

	return w
}

// OnCollision sets the callback invoked when a pair involving the ball
// starts touching.
func (w *World) OnCollision(fn func(a, b types.Tag)) {
	w.onCollision = fn
}

// AddRect registers a rectangle. Static rects get an immovable body that
// ReleaseWalls may later turn dynamic.
func (w *World) AddRect(r entity.Rect) {
	var body *cp.Body
	if r.Static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(wallMass, cp.MomentForBox(wallMass, r.Width, r.Height))
	}
	body.SetPosition(cp.Vector{X: r.Center.X, Y: r.Center.Y})
	w.space.AddBody(body)

	shape := cp.NewBox(body, r.Width, r.Height, 0)
	shape.SetElasticity(wallElasticity)
	shape.SetFriction(friction)
	shape.SetCollisionType(collisionTypeOf(r.Tag))
	// static bodies only use it once they turn dynamic
	shape.SetMass(wallMass)
	shape.UserData = r.Tag
	w.space.AddShape(shape)

	w.rects = append(w.rects, rectBody{body: body, rect: r})
}

// AddBall registers the dynamic ball. A world holds a single ball.
func (w *World) AddBall(c entity.Circle) {
	moment := cp.MomentForCircle(ballMass, 0, c.Radius, cp.Vector{})
	body := w.space.AddBody(cp.NewBody(ballMass, moment))
	body.SetPosition(cp.Vector{X: c.Center.X, Y: c.Center.Y})
	body.SetVelocity(c.Velocity.X, c.Velocity.Y)

	shape := w.space.AddShape(cp.NewCircle(body, c.Radius, cp.Vector{}))
	shape.SetElasticity(ballElasticity)
	shape.SetFriction(friction)
	shape.SetCollisionType(collisionBall)
	shape.UserData = c.Tag

	w.ball = body
	w.circle = c
}

func (w *World) BallVelocity() types.Vec {
	if w.ball == nil {
		return types.Vec{}
	}
	v := w.ball.Velocity()
	return types.Vec{X: v.X, Y: v.Y}
}

func (w *World) SetBallVelocity(v types.Vec) {
	if w.ball == nil {
		return
	}
	w.ball.SetVelocity(v.X, v.Y)
}

// ReleaseWalls turns every wall-tagged body dynamic after the current
// step. Boundaries and the goal stay static. Repeated calls do nothing.
func (w *World) ReleaseWalls() {
	if w.released {
		return
	}
	w.released = true
	w.pending = append(w.pending, func() {
		for _, s := range w.rects {
			if s.rect.Tag == types.TagWall && s.body.GetType() == cp.BODY_STATIC {
				s.body.SetType(cp.BODY_DYNAMIC)
			}
		}
	})
}

// EnableGravity sets downward gravity after the current step.
func (w *World) EnableGravity(g float64) {
	w.pending = append(w.pending, func() {
		w.space.SetGravity(cp.Vector{X: 0, Y: g})
	})
}

func (w *World) Gravity() types.Vec {
	g := w.space.Gravity()
	return types.Vec{X: g.X, Y: g.Y}
}

func (w *World) Released() bool {
	return w.released
}

// Step advances the simulation by dt seconds and then applies queued changes.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
	w.flush()
}

func (w *World) flush() {
	pending := w.pending
	w.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// Rects snapshots the rectangles in registration order.
func (w *World) Rects() []Body {
	bodies := make([]Body, 0, len(w.rects))
	for _, s := range w.rects {
		p := s.body.Position()
		bodies = append(bodies, Body{
			Tag:      s.rect.Tag,
			Position: types.Vec{X: p.X, Y: p.Y},
			Angle:    s.body.Angle(),
			Width:    s.rect.Width,
			Height:   s.rect.Height,
			Static:   s.body.GetType() == cp.BODY_STATIC,
		})
	}
	return bodies
}

// Ball snapshots the ball.
func (w *World) Ball() Body {
	if w.ball == nil {
		return Body{}
	}
	p := w.ball.Position()
	return Body{
		Tag:      w.circle.Tag,
		Position: types.Vec{X: p.X, Y: p.Y},
		Angle:    w.ball.Angle(),
		Radius:   w.circle.Radius,
	}
}

func tagOf(s *cp.Shape) types.Tag {
	if s == nil {
		return ""
	}
	tag, _ := s.UserData.(types.Tag)
	return tag
}

func collisionTypeOf(tag types.Tag) cp.CollisionType {
	switch tag {
	case types.TagBall:
		return collisionBall
	case types.TagGoal:
		return collisionGoal
	case types.TagBoundary:
		return collisionBoundary
	default:
		return collisionWall
	}
}
