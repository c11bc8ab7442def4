package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Update handles input and runs one simulation tick.
func (a *App) Update() {
	a.handleInput()
	if a.paused {
		return
	}
	a.advance(float64(rl.GetFrameTime()))
}

// Draw renders the frame: faded trail canvas, graticule, markers, HUD.
func (a *App) Draw() {
	if a.canvas == nil {
		a.canvas = newTrailCanvas(
			int32(a.cfg.Screen.Width), int32(a.cfg.Screen.Height),
			a.cfg.Render.CanvasFade,
		)
	}
	if !a.paused {
		a.canvas.draw(a.frame)
	}

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	a.canvas.blit()
	a.drawGraticule()
	a.drawStations()
	a.drawHUD()
	a.drawPanel()

	rl.EndDrawing()
}

// RunHeadless advances the simulation at a fixed cadence without a window,
// with every station active. Used for soak runs and telemetry capture.
func (a *App) RunHeadless(maxTicks int) {
	a.showAll = true
	for {
		a.advance(nominalDT)
		if maxTicks > 0 && a.tick >= int64(maxTicks) {
			return
		}
	}
}
