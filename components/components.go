// Package components defines the ECS components for monitoring stations.
// Each catalog station becomes one entity; the app queries these to place
// markers and to assemble the active-station list handed to the simulation.
package components

// Geo anchors a station entity at a geographic position.
type Geo struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

// Wind holds the station's latest wind observation.
type Wind struct {
	Speed  float64 // station-local units, >= 0 after load
	DirDeg float64 // compass bearing in [0, 360)
}

// Air holds the station's pollution reading.
type Air struct {
	PM float64 // unitless intensity, roughly 0..150+
}
