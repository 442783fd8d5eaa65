package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.controls.Paused = !g.controls.Paused
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.controls.StepsPerFrame > 1 {
		g.controls.StepsPerFrame--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.controls.StepsPerFrame < 10 {
		g.controls.StepsPerFrame++
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
}
