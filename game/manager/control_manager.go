package manager

import (
	"maze-game/game/types"
)

// ControlManager turns directional key presses into velocity changes.
type ControlManager struct {
	step float64
}

func NewControlManager(step float64) *ControlManager {
	return &ControlManager{step: step}
}

// Delta returns the velocity change for key. Arrow keys and WASD are
// aliases; anything else yields false.
func (c *ControlManager) Delta(key types.Key) (types.Vec, bool) {
	switch key {
	case types.KeyUp, types.KeyW:
		return types.Vec{Y: -c.step}, true
	case types.KeyDown, types.KeyS:
		return types.Vec{Y: c.step}, true
	case types.KeyRight, types.KeyD:
		return types.Vec{X: c.step}, true
	case types.KeyLeft, types.KeyA:
		return types.Vec{X: -c.step}, true
	}
	return types.Vec{}, false
}

// Apply adds the key's delta to v.
func (c *ControlManager) Apply(key types.Key, v types.Vec) (types.Vec, bool) {
	d, ok := c.Delta(key)
	if !ok {
		return v, false
	}
	return v.Add(d), true
}
