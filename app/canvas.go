package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plume/sim"
)

// backgroundColor is the basemap ground color; the trail canvas fades toward
// it so plumes leave dissolving streaks instead of hard dots.
var backgroundColor = rl.Color{R: 24, G: 27, B: 34, A: 255}

// trailCanvas is the persistent render texture the plumes are drawn into.
// Each frame it is washed with a translucent background rectangle, so older
// particles decay over a few dozen frames while fresh ones stay crisp.
type trailCanvas struct {
	target rl.RenderTexture2D
	w, h   int32
	fade   uint8
}

func newTrailCanvas(w, h int32, fade uint8) *trailCanvas {
	c := &trailCanvas{
		target: rl.LoadRenderTexture(w, h),
		w:      w,
		h:      h,
		fade:   fade,
	}
	// Start from a solid background so the first frames don't blend with
	// uninitialized texture memory.
	rl.BeginTextureMode(c.target)
	rl.ClearBackground(backgroundColor)
	rl.EndTextureMode()
	return c
}

// draw fades the previous frame's trails and stamps this frame's particles.
func (c *trailCanvas) draw(frame []sim.RenderAttribute) {
	rl.BeginTextureMode(c.target)

	wash := backgroundColor
	wash.A = c.fade
	rl.DrawRectangle(0, 0, c.w, c.h, wash)

	for i := range frame {
		attr := &frame[i]
		col := rl.Color{R: attr.R, G: attr.G, B: attr.B, A: uint8(attr.Alpha * 255)}
		rl.DrawCircleV(rl.Vector2{X: attr.X, Y: attr.Y}, attr.Radius, col)
	}

	rl.EndTextureMode()
}

// blit copies the canvas to the screen. Render textures are stored upside
// down, so the source rectangle uses a negative height.
func (c *trailCanvas) blit() {
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(c.w), Height: -float32(c.h)}
	rl.DrawTextureRec(c.target.Texture, src, rl.Vector2{}, rl.White)
}

// resize recreates the texture after a window resize.
func (c *trailCanvas) resize(w, h int32) {
	if w == c.w && h == c.h {
		return
	}
	rl.UnloadRenderTexture(c.target)
	c.target = rl.LoadRenderTexture(w, h)
	c.w = w
	c.h = h
	rl.BeginTextureMode(c.target)
	rl.ClearBackground(backgroundColor)
	rl.EndTextureMode()
}

func (c *trailCanvas) unload() {
	rl.UnloadRenderTexture(c.target)
}

func (a *App) canvasFade() uint8 {
	if a.canvas == nil {
		return a.cfg.Render.CanvasFade
	}
	return a.canvas.fade
}

func (a *App) setCanvasFade(fade uint8) {
	if fade == 0 {
		fade = 1
	}
	if a.canvas != nil {
		a.canvas.fade = fade
	}
}
