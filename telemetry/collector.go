// Package telemetry accumulates simulation events into windowed statistics
// and writes them to structured logs and CSV files.
package telemetry

import "github.com/pthm-cable/plume/sim"

// Collector accumulates simulation events within time windows and produces
// WindowStats. It implements sim.Recorder.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64

	windowStartTick int64

	// Event counters for current window
	spawns        int
	bursts        int
	deathsByRange int
	deathsByAge   int
	droppedSpawns int
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in wall-clock seconds
// nominalDT: seconds per frame at the target cadence (tick-to-time conversion)
func NewCollector(windowDurationSec, nominalDT float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / nominalDT)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
	}
}

// RecordSpawns records continuously spawned particles.
func (c *Collector) RecordSpawns(n int) {
	c.spawns += n
}

// RecordBurst records particles seeded by an initial burst.
func (c *Collector) RecordBurst(n int) {
	c.bursts += n
}

// RecordDeath records a particle removal.
func (c *Collector) RecordDeath(cause sim.DeathCause) {
	if cause == sim.DeathRange {
		c.deathsByRange++
	} else {
		c.deathsByAge++
	}
}

// RecordDroppedSpawns records spawn requests lost to the population cap.
func (c *Collector) RecordDroppedSpawns(n int) {
	c.droppedSpawns += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller supplies window-end snapshots: population totals, the active
// station count, and per-particle age and anchor-distance samples.
func (c *Collector) Flush(currentTick int64, liveParticles, activeStations int, ages, dists []float64) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.windowDurationSec / float64(c.windowDurationTicks),

		LiveParticles:  liveParticles,
		ActiveStations: activeStations,

		Spawns:        c.spawns,
		Bursts:        c.bursts,
		DeathsByRange: c.deathsByRange,
		DeathsByAge:   c.deathsByAge,
		DroppedSpawns: c.droppedSpawns,
	}
	stats.fillDistributions(ages, dists)

	// Reset for next window
	c.spawns = 0
	c.bursts = 0
	c.deathsByRange = 0
	c.deathsByAge = 0
	c.droppedSpawns = 0
	c.windowStartTick = currentTick

	return stats
}
