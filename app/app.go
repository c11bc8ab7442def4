// Package app wires the plume simulation to the raylib window loop: input,
// the per-frame stepper tick, the fading trail canvas, markers, and HUD.
package app

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plume/camera"
	"github.com/pthm-cable/plume/components"
	"github.com/pthm-cable/plume/config"
	"github.com/pthm-cable/plume/sim"
	"github.com/pthm-cable/plume/station"
	"github.com/pthm-cable/plume/telemetry"
)

// nominalDT is the frame delta at the target cadence, used for telemetry
// window sizing. The simulation itself uses measured frame deltas.
const nominalDT = 1.0 / 60.0

// Options configures an App instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StationPath    string // overrides config; empty = config / embedded set
	Headless       bool
}

// App holds the complete visualizer state.
type App struct {
	cfg *config.Config
	rng *rand.Rand

	// Station registry
	world  *ecs.World
	mapper *ecs.Map3[components.Geo, components.Wind, components.Air]
	filter *ecs.Filter3[components.Geo, components.Wind, components.Air]

	// Simulation
	stepper *sim.Stepper
	cam     *camera.GeoCamera
	frame   []sim.RenderAttribute // this frame's draw instructions

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	// UI state
	selectedID string // empty = none
	showAll    bool
	paused     bool
	panelOpen  bool

	// Rendering
	canvas *trailCanvas

	// Clock
	tick   int64
	simNow float64

	headless bool

	// Reused per-frame buffers
	active []station.Station
	ages   []float64
	dists  []float64
}

// New creates an App from the loaded config and the given options.
func New(opts Options) (*App, error) {
	cfg := config.Cfg()

	stationPath := opts.StationPath
	if stationPath == "" {
		stationPath = cfg.Stations.CSVPath
	}
	catalog, err := station.Load(stationPath)
	if err != nil {
		return nil, fmt.Errorf("loading stations: %w", err)
	}

	a := &App{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		logStats: opts.LogStats,
		headless: opts.Headless,
	}

	// Station registry
	a.world = ecs.NewWorld()
	a.mapper = ecs.NewMap3[components.Geo, components.Wind, components.Air](a.world)
	a.filter = ecs.NewFilter3[components.Geo, components.Wind, components.Air](a.world)
	for _, st := range catalog.All() {
		geo := components.Geo{ID: st.ID, Name: st.Name, Lat: st.Lat, Lon: st.Lon}
		wind := components.Wind{Speed: st.EffectiveWindSpeed(), DirDeg: st.WindDirDeg}
		air := components.Air{PM: st.EffectivePollution()}
		a.mapper.NewEntity(&geo, &wind, &air)
	}

	// Viewport
	a.cam = camera.New(
		cfg.Map.CenterLat, cfg.Map.CenterLon, cfg.Map.Zoom,
		cfg.Derived.ScreenW32, cfg.Derived.ScreenH32,
		cfg.Map.MinZoom, cfg.Map.MaxZoom,
	)

	// Simulation core, projecting through the camera
	a.stepper = sim.NewStepper(sim.ParamsFromConfig(cfg), a.cam.Project, a.rng)

	// Telemetry
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	a.collector = telemetry.NewCollector(statsWindow, nominalDT)
	a.stepper.SetRecorder(a.collector)

	a.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := a.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	return a, nil
}

// activeStations rebuilds the list of stations the stepper should animate:
// a single selected station, all stations if the global toggle is on, or
// none. The returned slice is reused across frames.
func (a *App) activeStations() []station.Station {
	a.active = a.active[:0]
	if a.selectedID == "" && !a.showAll {
		return a.active
	}

	query := a.filter.Query()
	for query.Next() {
		geo, wind, air := query.Get()
		if !a.showAll && geo.ID != a.selectedID {
			continue
		}
		a.active = append(a.active, station.Station{
			ID:         geo.ID,
			Name:       geo.Name,
			Lat:        geo.Lat,
			Lon:        geo.Lon,
			WindSpeed:  wind.Speed,
			WindDirDeg: wind.DirDeg,
			Pollution:  air.PM,
		})
	}
	return a.active
}

// advance runs one simulation tick. The stepper is invoked every frame, even
// with no active stations or below the activation zoom, so its notion of time
// stays current.
func (a *App) advance(dt float64) {
	if dt < 0 {
		dt = 0
	} else if dt > a.cfg.Simulation.MaxDT {
		dt = a.cfg.Simulation.MaxDT
	}
	a.simNow += dt

	active := a.activeStations()
	if a.cam.Zoom < a.cfg.Map.MinActivationZoom {
		active = active[:0] // zoomed out: plumes idle, clock still runs
	}

	a.frame = a.stepper.Step(active, dt, a.simNow)
	a.tick++

	if a.collector.ShouldFlush(a.tick) {
		a.flushTelemetry(active)
	}
}

func (a *App) flushTelemetry(active []station.Station) {
	a.ages = a.ages[:0]
	a.dists = a.dists[:0]
	a.ages, a.dists = a.stepper.ParticleStats(active, a.ages, a.dists)

	stats := a.collector.Flush(a.tick, a.stepper.TotalPopulation(), len(active), a.ages, a.dists)
	if a.logStats {
		stats.LogStats()
	}
	if err := a.output.WriteTelemetry(stats); err != nil {
		logError("writing telemetry", err)
	}
}

// Tick returns the current simulation tick.
func (a *App) Tick() int64 {
	return a.tick
}

// Close releases output files and GPU resources.
func (a *App) Close() error {
	if a.canvas != nil {
		a.canvas.unload()
	}
	return a.output.Close()
}
