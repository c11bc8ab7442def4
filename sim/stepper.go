package sim

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/plume/station"
)

// ProjectionFunc converts a geographic position to screen coordinates.
// The stepper treats it as a black box supplied by the host.
type ProjectionFunc func(lat, lon float64) (x, y float32)

// RenderAttribute is one draw instruction emitted by Step: a screen position,
// a radius, and a color with opacity. The host's render adapter turns these
// into pixels.
type RenderAttribute struct {
	X, Y    float32
	Radius  float32
	R, G, B uint8
	Alpha   float32
}

// DeathCause distinguishes why a particle was removed.
type DeathCause uint8

const (
	DeathRange DeathCause = iota
	DeathAge
)

// Recorder receives simulation lifecycle events. Implementations must be
// cheap; the stepper calls them from the per-frame hot path.
type Recorder interface {
	RecordSpawns(n int)
	RecordBurst(n int)
	RecordDeath(cause DeathCause)
	RecordDroppedSpawns(n int)
}

// Stepper advances all stations' particle populations by one frame delta:
// it spawns, integrates through the noise-perturbed wind field, prunes the
// dead, and yields render attributes.
//
// The stepper is single-threaded. The host must serialize calls to Step;
// one animation-frame loop does this naturally.
type Stepper struct {
	params   Params
	noise    *NoiseField
	project  ProjectionFunc
	rng      *rand.Rand
	recorder Recorder

	states map[string]*StationState
	out    []RenderAttribute // reused across frames
}

// NewStepper creates a stepper with the given parameters, projection, and
// random source. Passing a seeded rng makes spawn placement reproducible.
func NewStepper(p Params, project ProjectionFunc, rng *rand.Rand) *Stepper {
	return &Stepper{
		params:  p,
		noise:   NewNoiseField(p.KLat, p.KLon, p.KTime, p.KLat2, p.KTime2),
		project: project,
		rng:     rng,
		states:  make(map[string]*StationState),
	}
}

// SetRecorder attaches a telemetry sink. A nil recorder disables recording.
func (s *Stepper) SetRecorder(r Recorder) {
	s.recorder = r
}

// Params returns the current simulation parameters.
func (s *Stepper) Params() Params {
	return s.params
}

// SetParams replaces the simulation parameters, including the noise field
// frequencies. Existing populations are kept.
func (s *Stepper) SetParams(p Params) {
	s.params = p
	s.noise = NewNoiseField(p.KLat, p.KLon, p.KTime, p.KLat2, p.KTime2)
}

// ActivateStation lazily creates the simulation state for a station.
// A malformed station is rejected with *station.InvalidStationError and no
// state is created.
func (s *Stepper) ActivateStation(st *station.Station) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if _, ok := s.states[st.ID]; !ok {
		s.states[st.ID] = newStationState(s.params.MaxPopulation)
	}
	return nil
}

// Population returns the live-particle count for a station, or 0 if the
// station was never activated.
func (s *Stepper) Population(id string) int {
	if st, ok := s.states[id]; ok {
		return len(st.Particles)
	}
	return 0
}

// TotalPopulation returns the live-particle count across all stations.
func (s *Stepper) TotalPopulation() int {
	total := 0
	for _, st := range s.states {
		total += len(st.Particles)
	}
	return total
}

// ParticleStats appends every live particle's age and anchor distance to the
// given slices and returns them. Used by telemetry at window boundaries.
func (s *Stepper) ParticleStats(stations []station.Station, ages, dists []float64) ([]float64, []float64) {
	for i := range stations {
		st := &stations[i]
		state, ok := s.states[st.ID]
		if !ok {
			continue
		}
		for j := range state.Particles {
			pt := &state.Particles[j]
			ages = append(ages, pt.Age)
			dists = append(dists, degreeDistance(pt.Lat, pt.Lon, st.Lat, st.Lon))
		}
	}
	return ages, dists
}

// Step advances every listed station by dt seconds at simulation time now and
// returns the frame's draw instructions. Stations are processed in caller
// order; results are order-independent since populations never interact.
//
// dt is clamped to [0, MaxDT] to tolerate host stalls; now must be
// monotonically non-decreasing across calls. Stations that fail validation
// are skipped. The returned slice is reused on the next call.
func (s *Stepper) Step(stations []station.Station, dt, now float64) []RenderAttribute {
	if dt < 0 {
		dt = 0
	} else if dt > s.params.MaxDT {
		dt = s.params.MaxDT
	}

	s.out = s.out[:0]
	for i := range stations {
		st := &stations[i]
		state, ok := s.states[st.ID]
		if !ok {
			if s.ActivateStation(st) != nil {
				continue
			}
			state = s.states[st.ID]
		}
		s.stepStation(st, state, dt, now)
	}
	return s.out
}

// stepStation runs one frame for a single station: seed, spawn, integrate,
// emit, prune.
func (s *Stepper) stepStation(st *station.Station, state *StationState, dt, now float64) {
	p := &s.params
	density := p.densityScale(st.EffectivePollution())
	windAngle := st.WindDirDeg * math.Pi / 180

	// Seed an initial cloud whenever the population is empty, scaled by
	// pollution density so dirtier stations start denser.
	if len(state.Particles) == 0 && p.InitialBurst > 0 {
		n := int(math.Round(float64(p.InitialBurst) * density))
		if n > p.MaxPopulation {
			n = p.MaxPopulation
		}
		for i := 0; i < n; i++ {
			state.Particles = append(state.Particles, spawnParticle(st, windAngle, p, s.rng))
		}
		if s.recorder != nil && n > 0 {
			s.recorder.RecordBurst(n)
		}
	}

	// Continuous spawn. The integer part of the accumulator is consumed
	// every frame; requests beyond remaining capacity are dropped, not
	// deferred, so a full population does not build up a spawn debt.
	state.SpawnAcc += p.SpawnRate * density * dt
	want := int(state.SpawnAcc)
	state.SpawnAcc -= float64(want)
	capacity := p.MaxPopulation - len(state.Particles)
	if capacity < 0 {
		capacity = 0
	}
	n := want
	if n > capacity {
		n = capacity
	}
	for i := 0; i < n; i++ {
		state.Particles = append(state.Particles, spawnParticle(st, windAngle, p, s.rng))
	}
	if s.recorder != nil {
		if n > 0 {
			s.recorder.RecordSpawns(n)
		}
		if want > n {
			s.recorder.RecordDroppedSpawns(want - n)
		}
	}

	// Integrate, emit, and mark deaths. A particle that dies this frame is
	// not rendered; every emitted attribute satisfies dist <= MaxRange.
	for i := range state.Particles {
		pt := &state.Particles[i]

		dist := s.integrate(pt, st, windAngle, dt, now)

		if cause, dead := deathCause(pt, dist, p); dead {
			pt.Dead = true
			if s.recorder != nil {
				s.recorder.RecordDeath(cause)
			}
			continue
		}

		s.out = append(s.out, s.renderAttr(pt, dist))
	}

	state.prune()
}

// integrate advances one particle through the perturbed wind field and
// returns its new distance from the anchor.
//
// Position integration is dt-scaled; age advances by a fixed per-step
// increment regardless of dt. Lifespan is therefore frame-count-driven while
// motion is wall-clock-driven. That asymmetry is part of the tuned look and
// is kept deliberately.
func (s *Stepper) integrate(pt *Particle, st *station.Station, windAngle, dt, now float64) float64 {
	p := &s.params

	// Heading: station wind deflected by the turbulence field. The particle
	// seed offsets the sampling phase so cohorts don't move in lockstep.
	n := s.noise.Sample(pt.Lat, pt.Lon, now+pt.Seed)
	local := windAngle + n*p.AngleScale*p.Spread

	// Crosswind drift grows with normalized distance from the source.
	distNorm := 0.0
	if p.MaxRange > 0 {
		distNorm = degreeDistance(pt.Lat, pt.Lon, st.Lat, st.Lon) / p.MaxRange
		if distNorm > 1 {
			distNorm = 1
		}
	}

	step := pt.Speed * dt
	cross := p.CrosswindDrift * distNorm * step
	perp := local + math.Pi/2

	// Longitude steps shrink with latitude as meridians converge; the clamp
	// keeps the correction bounded near the poles.
	cosLat := math.Cos(pt.Lat * math.Pi / 180)
	if cosLat < 0.15 {
		cosLat = 0.15
	}

	pt.Lat += math.Cos(local)*step + math.Cos(perp)*cross
	pt.Lon += (math.Sin(local)*step + math.Sin(perp)*cross) / cosLat

	pt.Age += p.AgeIncrement

	return degreeDistance(pt.Lat, pt.Lon, st.Lat, st.Lon)
}

// renderAttr derives the draw instruction for a live particle. Size and
// opacity both follow density (closer to the source = denser = larger and
// more opaque), with opacity further attenuated by age.
func (s *Stepper) renderAttr(pt *Particle, dist float64) RenderAttribute {
	p := &s.params

	density := 1.0
	if p.MaxRange > 0 {
		density = 1 - dist/p.MaxRange
	}
	if density < 0 {
		density = 0
	}

	alpha := 0.85 * density * (1 - pt.Age*0.5)
	if alpha < 0.10 {
		alpha = 0.10
	}

	x, y := s.project(pt.Lat, pt.Lon)
	return RenderAttribute{
		X:      x,
		Y:      y,
		Radius: float32(p.MinSize + (p.MaxSize-p.MinSize)*density),
		R:      p.BaseColor[0],
		G:      p.BaseColor[1],
		B:      p.BaseColor[2],
		Alpha:  float32(alpha),
	}
}
