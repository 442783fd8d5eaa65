// Package ui renders the on-screen controls panel.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is the mutable control state shared with the game loop.
type State struct {
	Paused        bool
	StepsPerFrame int
	WalkEnabled   bool
}

// ControlsPanel renders the controls panel with pause, speed and walk toggles.
type ControlsPanel struct {
	x, y    int32
	width   int32
	visible bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		x:       x,
		y:       y,
		width:   width,
		visible: false,
	}
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and applies widget interactions to state.
// Returns the y coordinate below the panel.
func (c *ControlsPanel) Draw(s *State) int32 {
	if !c.visible {
		return c.y
	}

	const padding = int32(10)
	const lineHeight = int32(28)
	panelHeight := lineHeight*4 + padding*2

	rl.DrawRectangle(c.x, c.y, c.width, panelHeight, rl.Color{R: 20, G: 20, B: 20, A: 200})
	rl.DrawRectangleLines(c.x, c.y, c.width, panelHeight, rl.DarkGray)

	x := float32(c.x + padding)
	y := c.y + padding
	innerW := float32(c.width - padding*2)

	rl.DrawText("Controls", c.x+padding, y, 16, rl.White)
	y += lineHeight

	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: 100, Height: 22}, pauseLabel(s.Paused)) {
		s.Paused = !s.Paused
	}
	y += lineHeight

	rl.DrawText(fmt.Sprintf("Steps/frame: %d", s.StepsPerFrame), c.x+padding, y, 14, rl.LightGray)
	y += 16
	steps := gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: innerW - 40, Height: 16},
		"1", "10",
		float32(s.StepsPerFrame), 1, 10,
	)
	s.StepsPerFrame = int(steps + 0.5)
	y += lineHeight - 16

	s.WalkEnabled = gui.CheckBox(
		rl.Rectangle{X: x, Y: float32(y), Width: 16, Height: 16},
		"Walk", s.WalkEnabled,
	)
	y += lineHeight

	return y
}

func pauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
