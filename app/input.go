package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// selectRadius is the pick distance for station markers, in pixels.
const selectRadius = 14.0

// handleInput processes keyboard and mouse input.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyA) {
		a.showAll = !a.showAll
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.panelOpen = !a.panelOpen
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.selectedID = ""
	}

	a.handleCameraInput()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mp := rl.GetMousePosition()
		if !a.panelOpen || !rl.CheckCollisionPointRec(mp, a.panelBounds()) {
			a.selectNearest(mp.X, mp.Y)
		}
	}
}

// handleCameraInput processes pan and zoom.
func (a *App) handleCameraInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		mp := rl.GetMousePosition()
		a.cam.ZoomBy(float64(wheel)*0.25, mp.X, mp.Y)
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		a.cam.Pan(-d.X, -d.Y)
	}

	panStep := 400 * rl.GetFrameTime()
	if rl.IsKeyDown(rl.KeyLeft) {
		a.cam.Pan(-panStep, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		a.cam.Pan(panStep, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		a.cam.Pan(0, -panStep)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.cam.Pan(0, panStep)
	}
}

// handleResize propagates a window resize to the camera and trail canvas.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	a.cam.Resize(float32(w), float32(h))
	if a.canvas != nil {
		a.canvas.resize(w, h)
	}
}

// selectNearest picks the station marker closest to the click, if any is
// within range. Clicking empty map leaves the selection unchanged.
func (a *App) selectNearest(mx, my float32) {
	bestDist := math.MaxFloat64
	bestID := ""

	query := a.filter.Query()
	for query.Next() {
		geo, _, _ := query.Get()
		sx, sy := a.cam.Project(geo.Lat, geo.Lon)
		d := math.Hypot(float64(sx-mx), float64(sy-my))
		if d < bestDist {
			bestDist = d
			bestID = geo.ID
		}
	}

	if bestID != "" && bestDist <= selectRadius {
		a.selectedID = bestID
	}
}
