package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Snapshots at window end
	LiveParticles  int `csv:"live_particles"`
	ActiveStations int `csv:"active_stations"`

	// Events during window
	Spawns        int `csv:"spawns"`
	Bursts        int `csv:"bursts"`
	DeathsByRange int `csv:"deaths_range"`
	DeathsByAge   int `csv:"deaths_age"`
	DroppedSpawns int `csv:"dropped_spawns"`

	// Particle age distribution (sampled at window end)
	AgeMean float64 `csv:"age_mean"`
	AgeP10  float64 `csv:"age_p10"`
	AgeP50  float64 `csv:"age_p50"`
	AgeP90  float64 `csv:"age_p90"`

	// Anchor distance distribution
	DistMean float64 `csv:"dist_mean"`
	DistP10  float64 `csv:"dist_p10"`
	DistP50  float64 `csv:"dist_p50"`
	DistP90  float64 `csv:"dist_p90"`
}

// fillDistributions computes mean and percentiles of the window-end samples.
// Both input slices are sorted in place.
func (s *WindowStats) fillDistributions(ages, dists []float64) {
	if len(ages) > 0 {
		sort.Float64s(ages)
		s.AgeMean = stat.Mean(ages, nil)
		s.AgeP10 = stat.Quantile(0.10, stat.Empirical, ages, nil)
		s.AgeP50 = stat.Quantile(0.50, stat.Empirical, ages, nil)
		s.AgeP90 = stat.Quantile(0.90, stat.Empirical, ages, nil)
	}
	if len(dists) > 0 {
		sort.Float64s(dists)
		s.DistMean = stat.Mean(dists, nil)
		s.DistP10 = stat.Quantile(0.10, stat.Empirical, dists, nil)
		s.DistP50 = stat.Quantile(0.50, stat.Empirical, dists, nil)
		s.DistP90 = stat.Quantile(0.90, stat.Empirical, dists, nil)
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("live_particles", s.LiveParticles),
		slog.Int("active_stations", s.ActiveStations),
		slog.Int("spawns", s.Spawns),
		slog.Int("bursts", s.Bursts),
		slog.Int("deaths_range", s.DeathsByRange),
		slog.Int("deaths_age", s.DeathsByAge),
		slog.Int("dropped_spawns", s.DroppedSpawns),
		slog.Float64("age_p50", s.AgeP50),
		slog.Float64("dist_p50", s.DistP50),
	)
}

// LogStats emits the window to the default slog logger.
func (s WindowStats) LogStats() {
	slog.Info("window_stats", "stats", s)
}
