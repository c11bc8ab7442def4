// Package station defines monitoring station records and their data source.
//
// Stations are read-only inputs to the simulation: each carries a geographic
// anchor, the latest wind observation, and a pollution intensity used to scale
// plume density. The simulation never mutates a Station.
package station

import (
	"fmt"
	"math"
)

// Station is a fixed monitoring point with wind and pollution attributes.
type Station struct {
	ID         string  `csv:"id"`
	Name       string  `csv:"name"`
	Lat        float64 `csv:"lat"`
	Lon        float64 `csv:"lon"`
	WindSpeed  float64 `csv:"wind_speed"` // station-local units, >= 0
	WindDirDeg float64 `csv:"wind_dir"`   // compass bearing, 0 = north, clockwise
	Pollution  float64 `csv:"pm"`         // unitless intensity, roughly 0..150+
}

// InvalidStationError reports a station record the simulation must not activate.
type InvalidStationError struct {
	ID     string
	Reason string
}

func (e *InvalidStationError) Error() string {
	return fmt.Sprintf("invalid station %q: %s", e.ID, e.Reason)
}

// Validate checks that the station carries a usable geographic anchor.
// Negative wind speed or pollution is not an error; those floor to zero
// at the point of use.
func (s *Station) Validate() error {
	if math.IsNaN(s.Lat) || math.IsNaN(s.Lon) {
		return &InvalidStationError{ID: s.ID, Reason: "missing anchor coordinates"}
	}
	if s.Lat < -90 || s.Lat > 90 {
		return &InvalidStationError{ID: s.ID, Reason: fmt.Sprintf("latitude %.4f out of range", s.Lat)}
	}
	if s.Lon < -180 || s.Lon > 180 {
		return &InvalidStationError{ID: s.ID, Reason: fmt.Sprintf("longitude %.4f out of range", s.Lon)}
	}
	return nil
}

// EffectiveWindSpeed returns the wind speed floored at zero.
func (s *Station) EffectiveWindSpeed() float64 {
	if s.WindSpeed < 0 {
		return 0
	}
	return s.WindSpeed
}

// EffectivePollution returns the pollution intensity floored at zero.
func (s *Station) EffectivePollution() float64 {
	if s.Pollution < 0 {
		return 0
	}
	return s.Pollution
}

// NormalizeDirection wraps a compass bearing into [0, 360).
func NormalizeDirection(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
