package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Simulation.MaxPopulationPerStation != 450 {
		t.Errorf("expected max population 450, got %d", cfg.Simulation.MaxPopulationPerStation)
	}
	if cfg.Simulation.MaxDT != 0.08 {
		t.Errorf("expected max_dt 0.08, got %f", cfg.Simulation.MaxDT)
	}
	if cfg.Simulation.ReferenceIntensity != 150.0 {
		t.Errorf("expected reference intensity 150, got %f", cfg.Simulation.ReferenceIntensity)
	}
	if cfg.Noise.AngleScale <= 0 {
		t.Errorf("expected positive noise angle scale, got %f", cfg.Noise.AngleScale)
	}
	if cfg.Render.MinParticleSize >= cfg.Render.MaxParticleSize {
		t.Errorf("expected min size < max size, got %f >= %f",
			cfg.Render.MinParticleSize, cfg.Render.MaxParticleSize)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := "simulation:\n  spawn_rate_per_second: 25.0\nmap:\n  zoom: 11.0\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}

	// Overridden fields
	if cfg.Simulation.SpawnRatePerSecond != 25.0 {
		t.Errorf("expected spawn rate 25, got %f", cfg.Simulation.SpawnRatePerSecond)
	}
	if cfg.Map.Zoom != 11.0 {
		t.Errorf("expected zoom 11, got %f", cfg.Map.Zoom)
	}

	// Untouched fields keep defaults
	if cfg.Simulation.InitialBurst != 140 {
		t.Errorf("expected initial burst 140, got %d", cfg.Simulation.InitialBurst)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("derived screen width mismatch: %f vs %d", cfg.Derived.ScreenW32, cfg.Screen.Width)
	}
	if cfg.Map.MinActivationZoom < cfg.Map.MinZoom {
		t.Errorf("activation zoom %f below camera min zoom %f",
			cfg.Map.MinActivationZoom, cfg.Map.MinZoom)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if reloaded.Simulation.MaxRangeDegrees != cfg.Simulation.MaxRangeDegrees {
		t.Errorf("roundtrip changed max range: %f vs %f",
			reloaded.Simulation.MaxRangeDegrees, cfg.Simulation.MaxRangeDegrees)
	}
}
