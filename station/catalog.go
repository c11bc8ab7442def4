package station

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

//go:embed stations.csv
var defaultCSV []byte

// Catalog holds the loaded station set with ID lookup.
type Catalog struct {
	stations []Station
	byID     map[string]*Station
}

// Load reads stations from a CSV file, or the embedded default set if path is
// empty. Records failing validation are rejected, not skipped: a bad data file
// should be fixed, not silently thinned.
func Load(path string) (*Catalog, error) {
	data := defaultCSV
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading station file: %w", err)
		}
		data = b
	}

	var stations []Station
	if err := gocsv.UnmarshalBytes(data, &stations); err != nil {
		return nil, fmt.Errorf("parsing station CSV: %w", err)
	}
	if len(stations) == 0 {
		return nil, fmt.Errorf("station CSV contains no records")
	}

	c := &Catalog{
		stations: stations,
		byID:     make(map[string]*Station, len(stations)),
	}
	for i := range c.stations {
		s := &c.stations[i]
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate station id %q", s.ID)
		}
		s.WindDirDeg = NormalizeDirection(s.WindDirDeg)
		c.byID[s.ID] = s
	}
	return c, nil
}

// Len returns the number of stations in the catalog.
func (c *Catalog) Len() int {
	return len(c.stations)
}

// All returns the stations in file order. The returned slice is shared;
// callers must not modify it.
func (c *Catalog) All() []Station {
	return c.stations
}

// Get returns the station with the given ID.
func (c *Catalog) Get(id string) (*Station, bool) {
	s, ok := c.byID[id]
	return s, ok
}
