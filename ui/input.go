package ui

import (
	"maze-game/game"
	"maze-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PollKeys drains raylib's key queue, one entry per key-down event.
func PollKeys() []types.Key {
	var keys []types.Key
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if key := translate(k); key != types.KeyNone {
			keys = append(keys, key)
		}
	}
	return keys
}

func translate(k int32) types.Key {
	switch k {
	case rl.KeyUp:
		return types.KeyUp
	case rl.KeyDown:
		return types.KeyDown
	case rl.KeyLeft:
		return types.KeyLeft
	case rl.KeyRight:
		return types.KeyRight
	case rl.KeyW:
		return types.KeyW
	case rl.KeyA:
		return types.KeyA
	case rl.KeyS:
		return types.KeyS
	case rl.KeyD:
		return types.KeyD
	case rl.KeyR:
		return types.KeyReset
	case rl.KeyH:
		return types.KeyHint
	}
	return types.KeyNone
}

// ResetClicked reports a left click on the reset button while it is shown.
func (r *Renderer) ResetClicked(g *game.Game) bool {
	if !g.ResetVisible() || !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return false
	}
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), r.ResetButton())
}
