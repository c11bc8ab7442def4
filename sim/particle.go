package sim

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/plume/station"
)

// Particle is a single simulated parcel of drifting pollutant. It is owned
// exclusively by its station's population and removed once dead.
type Particle struct {
	Lat, Lon float64
	Age      float64 // accumulated life, advanced per step
	Seed     float64 // per-particle noise sampling phase offset
	Speed    float64 // degrees per second, fixed at spawn
	Dead     bool
}

// spawnParticle places a new particle behind the station relative to the wind,
// jittered in angle and clustered at a small radial offset from the anchor.
// Speed is derived once from the station wind and held for the particle's
// lifetime; only heading varies per step.
func spawnParticle(st *station.Station, windAngle float64, p *Params, rng *rand.Rand) Particle {
	ang := windAngle + math.Pi + (rng.Float64()*2-1)*p.SpawnAngleJit
	r := (p.SpawnRadiusMin + rng.Float64()*(p.SpawnRadiusMax-p.SpawnRadiusMin)) * p.SpawnRadiusMult

	speedRatio := 0.0
	if p.ReferenceSpeed > 0 {
		speedRatio = st.EffectiveWindSpeed() / p.ReferenceSpeed
	}

	return Particle{
		Lat:   st.Lat + math.Cos(ang)*r,
		Lon:   st.Lon + math.Sin(ang)*r,
		Age:   rng.Float64() * 0.2, // desynchronize cohorts spawned in the same frame
		Seed:  rng.Float64() * 100,
		Speed: speedRatio * p.SpeedFactor * (0.7 + rng.Float64()*0.8),
	}
}

// deathCause reports whether a particle has left the configured range or aged
// out, and which happened. Range wins when both apply in the same step.
func deathCause(pt *Particle, distFromStation float64, p *Params) (DeathCause, bool) {
	if distFromStation > p.MaxRange {
		return DeathRange, true
	}
	if pt.Age > p.MaxAge {
		return DeathAge, true
	}
	return 0, false
}

// degreeDistance is the Euclidean distance between two points in raw degrees.
// The death radius uses the same frame, so no meridian correction
// is applied here.
func degreeDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return math.Hypot(lat1-lat2, lon1-lon2)
}
