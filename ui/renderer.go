package ui

import (
	"fmt"
	"math"
	"maze-game/game"
	"maze-game/game/physics"
	"maze-game/game/types"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudPadding   = 6
	buttonWidth  = 160
	buttonHeight = 44
)

var (
	wallColor     = rl.Red
	boundaryColor = rl.Gray
	goalColor     = rl.Green
	ballColor     = rl.NewColor(255, 127, 80, 255) // coral
	hintColor     = rl.Fade(rl.SkyBlue, 0.6)
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	fontSize     int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.fontSize = max(r.screenHeight/45, 12)
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, b := range g.World.Rects() {
		drawRect(b)
	}

	if path := g.HintPath(); len(path) > 1 {
		thick := float32(math.Max(2, g.Layout.Ball.Radius/3))
		for i := 1; i < len(path); i++ {
			rl.DrawLineEx(vec(path[i-1]), vec(path[i]), thick, hintColor)
		}
	}

	ball := g.World.Ball()
	rl.DrawCircleV(vec(ball.Position), float32(ball.Radius), ballColor)

	r.drawHUD(g)
	if g.ResetVisible() {
		r.drawWinBanner(g)
	}

	rl.EndDrawing()
}

func drawRect(b physics.Body) {
	color := wallColor
	switch b.Tag {
	case types.TagGoal:
		color = goalColor
	case types.TagBoundary:
		color = boundaryColor
	}

	// rotate around the center so released walls tumble in place
	rec := rl.NewRectangle(float32(b.Position.X), float32(b.Position.Y), float32(b.Width), float32(b.Height))
	origin := rl.Vector2{X: float32(b.Width / 2), Y: float32(b.Height / 2)}
	rl.DrawRectanglePro(rec, origin, float32(b.Angle*180/math.Pi), color)
}

func (r *Renderer) drawHUD(g *game.Game) {
	elapsed := g.Elapsed().Round(time.Second)
	text := fmt.Sprintf("Run %s  %s  Wins: %d", g.ID[:8], elapsed, g.Stats.Wins())
	if g.Stats.Wins() > 0 {
		text += fmt.Sprintf("  Best: %.1fs", g.Stats.BestDuration())
	}

	width := rl.MeasureText(text, r.fontSize)
	rl.DrawRectangle(hudPadding, hudPadding, width+hudPadding*2, r.fontSize+hudPadding*2, rl.Fade(rl.Black, 0.7))
	rl.DrawText(text, hudPadding*2, hudPadding*2, r.fontSize, rl.White)
}

func (r *Renderer) drawWinBanner(g *game.Game) {
	text := fmt.Sprintf("You win! %d presses, %d bumps", g.KeyPresses(), g.WallHits())
	size := r.fontSize * 2
	width := rl.MeasureText(text, size)
	rl.DrawText(text, (r.screenWidth-width)/2, r.screenHeight/2-size*2, size, rl.Gold)

	button := r.ResetButton()
	rl.DrawRectangleRec(button, rl.DarkGray)
	rl.DrawRectangleLinesEx(button, 2, rl.White)
	label := "Reset"
	labelWidth := rl.MeasureText(label, r.fontSize)
	rl.DrawText(label,
		int32(button.X)+(int32(button.Width)-labelWidth)/2,
		int32(button.Y)+(int32(button.Height)-r.fontSize)/2,
		r.fontSize, rl.White)
}

// ResetButton is the clickable area of the reset affordance.
func (r *Renderer) ResetButton() rl.Rectangle {
	return rl.NewRectangle(
		float32(r.screenWidth-buttonWidth)/2,
		float32(r.screenHeight)/2,
		buttonWidth,
		buttonHeight,
	)
}

func vec(v types.Vec) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}
