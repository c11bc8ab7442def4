package sim

import "math"

// NoiseField is a deterministic pseudo-turbulence function of position and
// time. It is a weighted sum of two sinusoids, which keeps it cheap, smooth,
// and spatially coherent: nearby particles sample nearby phases and drift
// together, while the field itself evolves over time.
type NoiseField struct {
	kLat, kLon, kTime float64
	kLat2, kTime2     float64
}

// NewNoiseField creates a noise field with the given spatial and temporal
// frequencies.
func NewNoiseField(kLat, kLon, kTime, kLat2, kTime2 float64) *NoiseField {
	return &NoiseField{kLat: kLat, kLon: kLon, kTime: kTime, kLat2: kLat2, kTime2: kTime2}
}

// Sample returns a value in [-1, 1] for the given position and time.
// Purely deterministic; no state, no side effects.
func (n *NoiseField) Sample(lat, lon, t float64) float64 {
	a := math.Sin(2 * math.Pi * (lat*n.kLat + lon*n.kLon + t*n.kTime))
	b := math.Cos(2 * math.Pi * (lat*n.kLat2 - t*n.kTime2))
	return 0.6*a + 0.4*b
}
