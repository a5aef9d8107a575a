package manager

import (
	"maze-game/game/types"
)

// Effects are the one-way commands issued when a run is won.
type Effects interface {
	// ReleaseWalls makes every interior wall subject to the simulation.
	ReleaseWalls()
	// EnableGravity turns on downward gravity.
	EnableGravity()
	// ShowReset reveals the reset affordance.
	ShowReset()
}

// StateManager is the win-condition policy: PLAYING until the ball touches
// the goal, then WON for the rest of the run.
type StateManager struct {
	phase   types.Phase
	effects Effects
}

func NewStateManager(effects Effects) *StateManager {
	return &StateManager{
		phase:   types.Playing,
		effects: effects,
	}
}

// OnCollision consumes one collision pair. It returns true only for the
// collision that moves the run from PLAYING to WON.
func (sm *StateManager) OnCollision(a, b types.Tag) bool {
	if sm.phase == types.Won || !IsGoalReached(a, b) {
		return false
	}

	sm.phase = types.Won
	sm.effects.ReleaseWalls()
	sm.effects.EnableGravity()
	sm.effects.ShowReset()
	return true
}

func (sm *StateManager) Phase() types.Phase {
	return sm.phase
}

func (sm *StateManager) Won() bool {
	return sm.phase == types.Won
}

// Reset returns to PLAYING. Only valid together with a freshly generated maze.
func (sm *StateManager) Reset() {
	sm.phase = types.Playing
}

// IsGoalReached reports whether the pair is exactly {ball, goal}, in any order.
func IsGoalReached(a, b types.Tag) bool {
	return (a == types.TagBall && b == types.TagGoal) || (a == types.TagGoal && b == types.TagBall)
}
