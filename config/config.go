// Package config provides configuration loading and access for the plume visualizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualizer configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Map        MapConfig        `yaml:"map"`
	Simulation SimulationConfig `yaml:"simulation"`
	Noise      NoiseConfig      `yaml:"noise"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Render     RenderConfig     `yaml:"render"`
	Stations   StationsConfig   `yaml:"stations"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// MapConfig holds the initial viewport and zoom gating parameters.
type MapConfig struct {
	CenterLat         float64 `yaml:"center_lat"`
	CenterLon         float64 `yaml:"center_lon"`
	Zoom              float64 `yaml:"zoom"`
	MinZoom           float64 `yaml:"min_zoom"`
	MaxZoom           float64 `yaml:"max_zoom"`
	MinActivationZoom float64 `yaml:"min_activation_zoom"` // plumes animate at or above this zoom
}

// SimulationConfig holds per-station particle simulation parameters.
type SimulationConfig struct {
	MaxPopulationPerStation int     `yaml:"max_population_per_station"`
	SpawnRatePerSecond      float64 `yaml:"spawn_rate_per_second"`
	InitialBurst            int     `yaml:"initial_burst"`
	MaxRangeDegrees         float64 `yaml:"max_range_degrees"` // death radius around the anchor
	MaxAge                  float64 `yaml:"max_age"`
	AgeIncrement            float64 `yaml:"age_increment"` // per step, not per second
	SpeedFactor             float64 `yaml:"speed_factor"`  // degrees per second at reference wind
	ReferenceSpeed          float64 `yaml:"reference_speed"`
	ReferenceIntensity      float64 `yaml:"reference_intensity"` // pollution value mapping to full density
	MaxDT                   float64 `yaml:"max_dt"`              // frame delta clamp in seconds
}

// NoiseConfig holds the turbulence field frequencies and strength.
type NoiseConfig struct {
	KLat             float64 `yaml:"k_lat"`
	KLon             float64 `yaml:"k_lon"`
	KTime            float64 `yaml:"k_time"`
	KLat2            float64 `yaml:"k_lat2"`
	KTime2           float64 `yaml:"k_time2"`
	AngleScale       float64 `yaml:"angle_scale"`       // radians of heading deflection at full noise
	SpreadMultiplier float64 `yaml:"spread_multiplier"` // extra plume widening factor
	CrosswindDrift   float64 `yaml:"crosswind_drift"`   // sideways drift strength (0 = off)
}

// SpawnConfig holds spawn-point spread parameters.
type SpawnConfig struct {
	RadiusMinDegrees float64 `yaml:"radius_min_degrees"`
	RadiusMaxDegrees float64 `yaml:"radius_max_degrees"`
	RadiusMultiplier float64 `yaml:"radius_multiplier"`
	AngleJitter      float64 `yaml:"angle_jitter"` // radians either side of upwind
}

// RenderConfig holds particle drawing parameters.
type RenderConfig struct {
	MinParticleSize float64  `yaml:"min_particle_size"`
	MaxParticleSize float64  `yaml:"max_particle_size"`
	BaseColor       [3]uint8 `yaml:"base_color"`
	CanvasFade      uint8    `yaml:"canvas_fade"` // per-frame fade alpha of the trail canvas
}

// StationsConfig holds station data source settings.
type StationsConfig struct {
	CSVPath string `yaml:"csv_path"` // empty = embedded default set
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Zoom gate never sits below the camera's own zoom floor
	if c.Map.MinActivationZoom < c.Map.MinZoom {
		c.Map.MinActivationZoom = c.Map.MinZoom
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
