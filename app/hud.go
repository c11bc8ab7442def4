package app

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth  = 280
	panelMargin = 10
	rowHeight   = 20
	rowGap      = 26
)

func (a *App) panelBounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(a.cam.ViewportW) - panelWidth - panelMargin,
		Y:      panelMargin,
		Width:  panelWidth,
		Height: 240,
	}
}

// drawPanel renders the tuning panel and applies any slider changes back
// onto the running simulation.
func (a *App) drawPanel() {
	if !a.panelOpen {
		return
	}
	bounds := a.panelBounds()
	rl.DrawRectangleRec(bounds, rl.Color{R: 30, G: 33, B: 41, A: 235})
	rl.DrawRectangleLinesEx(bounds, 1, rl.Color{R: 80, G: 86, B: 98, A: 255})

	x := bounds.X + 70
	w := bounds.Width - 130
	y := bounds.Y + 14

	rl.DrawText("Tuning", int32(bounds.X)+10, int32(y), 18, labelColor)
	y += 30

	p := a.stepper.Params()
	changed := false

	rl.DrawText("Spawn", int32(bounds.X)+10, int32(y)+3, 12, labelColor)
	sr := gui.SliderBar(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight}, "10", "300", float32(p.SpawnRate), 10, 300)
	if float64(sr) != p.SpawnRate {
		p.SpawnRate = float64(sr)
		changed = true
	}
	y += rowGap

	rl.DrawText("Wander", int32(bounds.X)+10, int32(y)+3, 12, labelColor)
	as := gui.SliderBar(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight}, "0", "2", float32(p.AngleScale), 0, 2)
	if float64(as) != p.AngleScale {
		p.AngleScale = float64(as)
		changed = true
	}
	y += rowGap

	rl.DrawText("Spread", int32(bounds.X)+10, int32(y)+3, 12, labelColor)
	sp := gui.SliderBar(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight}, "0", "3", float32(p.Spread), 0, 3)
	if float64(sp) != p.Spread {
		p.Spread = float64(sp)
		changed = true
	}
	y += rowGap

	rl.DrawText("Trail", int32(bounds.X)+10, int32(y)+3, 12, labelColor)
	fade := gui.SliderBar(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight}, "1", "80", float32(a.canvasFade()), 1, 80)
	a.setCanvasFade(uint8(fade))
	y += rowGap

	if changed {
		a.stepper.SetParams(p)
	}

	label := "Show all plumes"
	if a.showAll {
		label = "Selected plume only"
	}
	if gui.Button(rl.Rectangle{X: bounds.X + 10, Y: y, Width: bounds.Width - 20, Height: 24}, label) {
		a.showAll = !a.showAll
	}
	y += 32

	if a.selectedID != "" {
		pop := a.stepper.Population(a.selectedID)
		rl.DrawText(fmt.Sprintf("%s: %d particles", a.selectedID, pop), int32(bounds.X)+10, int32(y), 12, labelColor)
	} else if !a.showAll {
		rl.DrawText("No station selected", int32(bounds.X)+10, int32(y), 12, labelColor)
	}
}
