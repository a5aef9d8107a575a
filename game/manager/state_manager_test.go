package manager

import (
	"maze-game/game/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingEffects struct {
	calls []string
}

func (r *recordingEffects) ReleaseWalls()  { r.calls = append(r.calls, "release") }
func (r *recordingEffects) EnableGravity() { r.calls = append(r.calls, "gravity") }
func (r *recordingEffects) ShowReset()     { r.calls = append(r.calls, "reset") }

func TestStateManagerIgnoresOtherPairs(t *testing.T) {
	fx := &recordingEffects{}
	sm := NewStateManager(fx)

	pairs := [][2]types.Tag{
		{types.TagBall, types.TagWall},
		{types.TagWall, types.TagBall},
		{types.TagBall, types.TagBoundary},
		{types.TagGoal, types.TagWall},
		{types.TagBall, types.TagBall},
		{types.TagGoal, types.TagGoal},
	}
	for _, p := range pairs {
		assert.False(t, sm.OnCollision(p[0], p[1]), "%v", p)
	}

	assert.Equal(t, types.Playing, sm.Phase())
	assert.Empty(t, fx.calls)
}

func TestStateManagerWinsOnce(t *testing.T) {
	for _, order := range [][2]types.Tag{
		{types.TagBall, types.TagGoal},
		{types.TagGoal, types.TagBall},
	} {
		t.Run(string(order[0])+"-"+string(order[1]), func(t *testing.T) {
			fx := &recordingEffects{}
			sm := NewStateManager(fx)

			assert.True(t, sm.OnCollision(order[0], order[1]))
			assert.True(t, sm.Won())
			assert.Equal(t, []string{"release", "gravity", "reset"}, fx.calls)

			// further contacts in the same or later frames change nothing
			assert.False(t, sm.OnCollision(types.TagBall, types.TagGoal))
			assert.False(t, sm.OnCollision(types.TagGoal, types.TagBall))
			assert.Equal(t, types.Won, sm.Phase())
			assert.Len(t, fx.calls, 3)
		})
	}
}

func TestStateManagerReset(t *testing.T) {
	fx := &recordingEffects{}
	sm := NewStateManager(fx)

	sm.OnCollision(types.TagBall, types.TagGoal)
	sm.Reset()
	assert.Equal(t, types.Playing, sm.Phase())

	assert.True(t, sm.OnCollision(types.TagGoal, types.TagBall))
	assert.Len(t, fx.calls, 6)
}
