package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	graticuleColor = rl.Color{R: 60, G: 66, B: 78, A: 90}
	labelColor     = rl.Color{R: 200, G: 205, B: 214, A: 255}
	selectionColor = rl.Color{R: 255, G: 255, B: 255, A: 220}
)

// graticuleSpacing picks a line spacing in degrees that stays readable at
// the current zoom.
func graticuleSpacing(zoom float64) float64 {
	switch {
	case zoom >= 12:
		return 0.1
	case zoom >= 10:
		return 0.25
	case zoom >= 8:
		return 0.5
	case zoom >= 6:
		return 1.0
	default:
		return 2.0
	}
}

// drawGraticule draws faint latitude/longitude lines as the basemap.
func (a *App) drawGraticule() {
	w := a.cam.ViewportW
	h := a.cam.ViewportH
	maxLat, minLon := a.cam.Unproject(0, 0)
	minLat, maxLon := a.cam.Unproject(w, h)
	sp := graticuleSpacing(a.cam.Zoom)

	for lon := math.Floor(minLon/sp) * sp; lon <= maxLon; lon += sp {
		x, _ := a.cam.Project(minLat, lon)
		rl.DrawLine(int32(x), 0, int32(x), int32(h), graticuleColor)
	}
	for lat := math.Floor(minLat/sp) * sp; lat <= maxLat; lat += sp {
		_, y := a.cam.Project(lat, minLon)
		rl.DrawLine(0, int32(y), int32(w), int32(y), graticuleColor)
	}
}

// pmColor ramps marker color from green through yellow to red with
// pollution intensity.
func pmColor(pm float64) rl.Color {
	t := pm / 150.0
	if t > 1 {
		t = 1
	}
	if t < 0.5 {
		// green -> yellow
		k := t * 2
		return rl.Color{R: uint8(80 + 175*k), G: 200, B: 60, A: 255}
	}
	// yellow -> red
	k := (t - 0.5) * 2
	return rl.Color{R: 255, G: uint8(200 * (1 - k)), B: 50, A: 255}
}

// drawStations renders a marker per station: a pollution-colored dot, a
// downwind tick, and a highlight ring plus label for the selection.
func (a *App) drawStations() {
	query := a.filter.Query()
	for query.Next() {
		geo, wind, air := query.Get()
		if !a.cam.IsVisible(geo.Lat, geo.Lon, 40) {
			continue
		}
		sx, sy := a.cam.Project(geo.Lat, geo.Lon)

		// Downwind tick, sized by wind speed
		ang := wind.DirDeg * math.Pi / 180
		tickLen := float32(8 + wind.Speed*1.2)
		ex := sx + float32(math.Sin(ang))*tickLen
		ey := sy - float32(math.Cos(ang))*tickLen
		rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: ex, Y: ey}, 2, rl.Color{R: 150, G: 158, B: 170, A: 200})

		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, 5, pmColor(air.PM))
		rl.DrawCircleLinesV(rl.Vector2{X: sx, Y: sy}, 5, rl.Color{R: 20, G: 22, B: 28, A: 255})

		if geo.ID == a.selectedID {
			rl.DrawCircleLinesV(rl.Vector2{X: sx, Y: sy}, 9, selectionColor)
			label := fmt.Sprintf("%s  PM %.1f  wind %.1f @ %.0f°", geo.Name, air.PM, wind.Speed, wind.DirDeg)
			rl.DrawText(label, int32(sx)+12, int32(sy)-22, 14, labelColor)
		}
	}
}

// drawHUD renders the status lines in the top-left corner.
func (a *App) drawHUD() {
	activeCount := len(a.active)
	rl.DrawText(fmt.Sprintf("Tick: %d  FPS: %d", a.tick, rl.GetFPS()), 10, 10, 18, labelColor)
	rl.DrawText(fmt.Sprintf("Particles: %d  Active stations: %d", a.stepper.TotalPopulation(), activeCount), 10, 32, 18, labelColor)
	rl.DrawText(fmt.Sprintf("Zoom: %.2f", a.cam.Zoom), 10, 54, 18, labelColor)

	if a.cam.Zoom < a.cfg.Map.MinActivationZoom {
		rl.DrawText("Zoom in to animate plumes", 10, 76, 18, rl.Color{R: 230, G: 190, B: 100, A: 255})
	}
	if a.paused {
		rl.DrawText("PAUSED", 10, 98, 18, rl.Yellow)
	}

	help := "[click] select  [Esc] deselect  [A] all plumes  [Tab] tuning  [Space] pause  [wheel] zoom  [RMB] pan"
	rl.DrawText(help, 10, int32(a.cam.ViewportH)-24, 14, rl.Color{R: 130, G: 136, B: 148, A: 255})
}
