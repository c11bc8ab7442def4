// Package sim implements the per-station pollutant plume particle simulation.
//
// The simulation advects particles through a procedurally perturbed vector
// field anchored on each station's wind vector. It consumes station records
// and a frame delta, and emits per-particle render attributes through an
// injected geographic-to-screen projection. It owns no rendering and no
// scheduling; the host drives it once per frame.
package sim

import "github.com/pthm-cable/plume/config"

// Params holds every tunable the stepper consumes. Tests build this struct
// directly; the application derives it from the loaded config.
type Params struct {
	MaxPopulation      int     // live-particle cap per station
	SpawnRate          float64 // particles per second at full density
	InitialBurst       int     // particles seeded when a population is empty
	MaxRange           float64 // death radius around the anchor, degrees
	MaxAge             float64 // death age
	AgeIncrement       float64 // age advance per step (frame-count-driven, see Step)
	SpeedFactor        float64 // degrees per second at reference wind speed
	ReferenceSpeed     float64 // wind speed mapping to SpeedFactor
	ReferenceIntensity float64 // pollution value mapping to full spawn density
	MaxDT              float64 // frame delta clamp, seconds

	// Turbulence field
	KLat, KLon, KTime float64 // primary sinusoid frequencies
	KLat2, KTime2     float64 // secondary sinusoid frequencies
	AngleScale        float64 // radians of heading deflection at full noise
	Spread            float64 // plume widening multiplier on AngleScale
	CrosswindDrift    float64 // sideways drift strength, grows with range

	// Spawn-point spread
	SpawnRadiusMin  float64 // degrees
	SpawnRadiusMax  float64 // degrees
	SpawnRadiusMult float64
	SpawnAngleJit   float64 // radians either side of upwind

	// Render attribute derivation
	MinSize   float64
	MaxSize   float64
	BaseColor [3]uint8
}

// ParamsFromConfig maps the loaded configuration onto simulation parameters.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		MaxPopulation:      cfg.Simulation.MaxPopulationPerStation,
		SpawnRate:          cfg.Simulation.SpawnRatePerSecond,
		InitialBurst:       cfg.Simulation.InitialBurst,
		MaxRange:           cfg.Simulation.MaxRangeDegrees,
		MaxAge:             cfg.Simulation.MaxAge,
		AgeIncrement:       cfg.Simulation.AgeIncrement,
		SpeedFactor:        cfg.Simulation.SpeedFactor,
		ReferenceSpeed:     cfg.Simulation.ReferenceSpeed,
		ReferenceIntensity: cfg.Simulation.ReferenceIntensity,
		MaxDT:              cfg.Simulation.MaxDT,

		KLat:           cfg.Noise.KLat,
		KLon:           cfg.Noise.KLon,
		KTime:          cfg.Noise.KTime,
		KLat2:          cfg.Noise.KLat2,
		KTime2:         cfg.Noise.KTime2,
		AngleScale:     cfg.Noise.AngleScale,
		Spread:         cfg.Noise.SpreadMultiplier,
		CrosswindDrift: cfg.Noise.CrosswindDrift,

		SpawnRadiusMin:  cfg.Spawn.RadiusMinDegrees,
		SpawnRadiusMax:  cfg.Spawn.RadiusMaxDegrees,
		SpawnRadiusMult: cfg.Spawn.RadiusMultiplier,
		SpawnAngleJit:   cfg.Spawn.AngleJitter,

		MinSize:   cfg.Render.MinParticleSize,
		MaxSize:   cfg.Render.MaxParticleSize,
		BaseColor: cfg.Render.BaseColor,
	}
}

// densityScale maps pollution intensity to a spawn-volume factor in [0, 1].
func (p *Params) densityScale(pollution float64) float64 {
	if pollution <= 0 || p.ReferenceIntensity <= 0 {
		return 0
	}
	d := pollution / p.ReferenceIntensity
	if d > 1 {
		return 1
	}
	return d
}
