// Turbulence field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/noisepreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plume/sim"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 256
)

// NoiseParams holds the perturbation-field frequencies being tuned.
type NoiseParams struct {
	KLat, KLon, KTime float32
	KLat2, KTime2     float32
	AngleScale        float32
}

func defaultParams() NoiseParams {
	return NoiseParams{
		KLat:       6.0,
		KLon:       6.0,
		KTime:      0.08,
		KLat2:      11.0,
		KTime2:     0.05,
		AngleScale: 0.9,
	}
}

// Geographic window the preview samples: one plume's worth of map around
// the default anchor.
const (
	centerLat = 42.3314
	centerLon = -83.0458
	halfSpan  = 0.35
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Turbulence Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()

	noiseGrid := make([]float32, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var time float32 = 0
	animating := true
	needsRegen := true

	for !rl.WindowShouldClose() {
		if animating {
			time += rl.GetFrameTime()
			needsRegen = true
		}

		if needsRegen {
			generateField(noiseGrid, params, time)
			updateTexture(texture, noiseGrid)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		var minVal, maxVal float32 = 1, -1
		for _, v := range noiseGrid {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f", minVal, maxVal), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.1f  Window: ±%.2f° around %.4f, %.4f", time, halfSpan, centerLat, centerLon), 15, statsY+20, 16, rl.DarkGray)
		rl.DrawText("Blue = deflect left, red = deflect right", 15, statsY+40, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Turbulence Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		params.KLat = slider(&panelY, panelX, "Lat frequency (primary)", "%.1f", params.KLat, 0, 30, &needsRegen)
		params.KLon = slider(&panelY, panelX, "Lon frequency (primary)", "%.1f", params.KLon, 0, 30, &needsRegen)
		params.KTime = slider(&panelY, panelX, "Time frequency (primary)", "%.3f", params.KTime, 0, 0.5, &needsRegen)
		params.KLat2 = slider(&panelY, panelX, "Lat frequency (secondary)", "%.1f", params.KLat2, 0, 30, &needsRegen)
		params.KTime2 = slider(&panelY, panelX, "Time frequency (secondary)", "%.3f", params.KTime2, 0, 0.5, &needsRegen)
		params.AngleScale = slider(&panelY, panelX, "Angle scale (rad at full noise)", "%.2f", params.AngleScale, 0, 2, &needsRegen)

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			time = 0
			needsRegen = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			time = 0
			needsRegen = true
		}
		panelY += 50

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			out := ""
			for _, line := range yamlLines(params) {
				out += line + "\n"
			}
			rl.SetClipboardText(out)
		}

		rl.EndDrawing()
	}
}

func slider(panelY *float32, panelX float32, label, format string, value, min, max float32, needsRegen *bool) float32 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	next := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf(format, min), fmt.Sprintf(format, max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(panelX+float32(panelWidth-70)), int32(*panelY+2), 16, rl.DarkGray)
	*panelY += 35
	if next != value {
		*needsRegen = true
	}
	return next
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func yamlLines(p NoiseParams) []string {
	return []string{
		"noise:",
		fmt.Sprintf("  k_lat: %.1f", p.KLat),
		fmt.Sprintf("  k_lon: %.1f", p.KLon),
		fmt.Sprintf("  k_time: %.3f", p.KTime),
		fmt.Sprintf("  k_lat2: %.1f", p.KLat2),
		fmt.Sprintf("  k_time2: %.3f", p.KTime2),
		fmt.Sprintf("  angle_scale: %.2f", p.AngleScale),
	}
}

// generateField samples the perturbation field over the geographic window.
func generateField(grid []float32, p NoiseParams, t float32) {
	field := sim.NewNoiseField(
		float64(p.KLat), float64(p.KLon), float64(p.KTime),
		float64(p.KLat2), float64(p.KTime2),
	)
	for y := 0; y < gridSize; y++ {
		lat := centerLat + halfSpan - 2*halfSpan*(float64(y)+0.5)/gridSize
		for x := 0; x < gridSize; x++ {
			lon := centerLon - halfSpan + 2*halfSpan*(float64(x)+0.5)/gridSize
			grid[y*gridSize+x] = float32(field.Sample(lat, lon, float64(t)))
		}
	}
}

// updateTexture maps field values in [-1, 1] onto a blue-white-red ramp.
func updateTexture(texture rl.Texture2D, grid []float32) {
	pixels := make([]rl.Color, len(grid))
	for i, v := range grid {
		if v < -1 {
			v = -1
		} else if v > 1 {
			v = 1
		}
		if v < 0 {
			k := uint8(255 * (1 + v))
			pixels[i] = rl.Color{R: k, G: k, B: 255, A: 255}
		} else {
			k := uint8(255 * (1 - v))
			pixels[i] = rl.Color{R: 255, G: k, B: k, A: 255}
		}
	}
	rl.UpdateTexture(texture, pixels)
}
