package manager

import (
	"maze-game/game/types"
)

// Pair is an unordered pair of role tags.
type Pair struct {
	A, B types.Tag
}

// normalize orders the tags so {a,b} and {b,a} share a key.
func (p Pair) normalize() Pair {
	if p.B < p.A {
		return Pair{A: p.B, B: p.A}
	}
	return p
}

type CollisionManager struct {
	state    *StateManager
	contacts map[Pair]int
}

func NewCollisionManager(state *StateManager) *CollisionManager {
	return &CollisionManager{
		state:    state,
		contacts: make(map[Pair]int),
	}
}

// HandleCollision records a contact and forwards it to the win policy.
// Called from the physics step; it does no more than bookkeeping.
func (cm *CollisionManager) HandleCollision(a, b types.Tag) bool {
	cm.contacts[Pair{A: a, B: b}.normalize()]++
	return cm.state.OnCollision(a, b)
}

// Contacts returns how many times the two tags have collided this run.
func (cm *CollisionManager) Contacts(a, b types.Tag) int {
	return cm.contacts[Pair{A: a, B: b}.normalize()]
}

// WallHits is the number of times the ball bumped into a wall or the frame.
func (cm *CollisionManager) WallHits() int {
	return cm.Contacts(types.TagBall, types.TagWall) + cm.Contacts(types.TagBall, types.TagBoundary)
}

func (cm *CollisionManager) Reset() {
	cm.contacts = make(map[Pair]int)
}
