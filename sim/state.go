package sim

// StationState is the mutable per-station population: the live particles and
// the fractional count of particles owed but not yet emitted. States live in
// the Stepper's map, keyed by station ID, never attached to the externally
// owned Station record. A state persists for the session; its population may
// reach zero and later repopulate.
type StationState struct {
	Particles []Particle
	SpawnAcc  float64 // fractional spawn carry-over, always >= 0
}

func newStationState(capacity int) *StationState {
	return &StationState{
		Particles: make([]Particle, 0, capacity),
	}
}

// prune removes dead particles by in-place compaction, preserving the
// relative order of survivors.
func (s *StationState) prune() {
	alive := 0
	for i := range s.Particles {
		if s.Particles[i].Dead {
			continue
		}
		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]
}
