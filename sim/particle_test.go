package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/plume/station"
)

// testParams mirrors the shipped defaults; tests that need different tuning
// override individual fields.
func testParams() Params {
	return Params{
		MaxPopulation:      450,
		SpawnRate:          80.0,
		InitialBurst:       140,
		MaxRange:           0.35,
		MaxAge:             2.2,
		AgeIncrement:       0.002,
		SpeedFactor:        0.045,
		ReferenceSpeed:     10.0,
		ReferenceIntensity: 150.0,
		MaxDT:              0.08,

		KLat: 6.0, KLon: 6.0, KTime: 0.08, KLat2: 11.0, KTime2: 0.05,
		AngleScale: 0.9, Spread: 1.0, CrosswindDrift: 0,

		SpawnRadiusMin: 0.008, SpawnRadiusMax: 0.04,
		SpawnRadiusMult: 1.0, SpawnAngleJit: 0.6,

		MinSize: 1.2, MaxSize: 4.6,
		BaseColor: [3]uint8{233, 116, 81},
	}
}

func detroitStation() station.Station {
	return station.Station{
		ID:         "det-sw",
		Name:       "Detroit Southwest",
		Lat:        42.3314,
		Lon:        -83.0458,
		WindSpeed:  11.0,
		WindDirDeg: 240,
		Pollution:  58.4,
	}
}

// angleDiff wraps the difference between two angles into [-pi, pi].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func TestSpawnPlacement(t *testing.T) {
	p := testParams()
	st := detroitStation()
	rng := rand.New(rand.NewSource(42))
	windAngle := st.WindDirDeg * math.Pi / 180
	upwind := windAngle + math.Pi // 240 + 180 = 60 degrees

	for i := 0; i < 500; i++ {
		pt := spawnParticle(&st, windAngle, &p, rng)

		r := degreeDistance(pt.Lat, pt.Lon, st.Lat, st.Lon)
		if r < p.SpawnRadiusMin-1e-12 || r > p.SpawnRadiusMax+1e-12 {
			t.Fatalf("spawn radius %f outside [%f, %f]", r, p.SpawnRadiusMin, p.SpawnRadiusMax)
		}

		bearing := math.Atan2(pt.Lon-st.Lon, pt.Lat-st.Lat)
		if d := math.Abs(angleDiff(bearing, upwind)); d > p.SpawnAngleJit+1e-9 {
			t.Fatalf("spawn bearing off upwind by %f rad, jitter limit %f", d, p.SpawnAngleJit)
		}

		if pt.Age < 0 || pt.Age >= 0.2 {
			t.Fatalf("initial age %f outside [0, 0.2)", pt.Age)
		}
		if pt.Dead {
			t.Fatal("fresh particle marked dead")
		}

		// Speed = (11/10) * factor * uniform(0.7, 1.5)
		lo := 1.1 * p.SpeedFactor * 0.7
		hi := 1.1 * p.SpeedFactor * 1.5
		if pt.Speed < lo-1e-12 || pt.Speed > hi+1e-12 {
			t.Fatalf("spawn speed %f outside [%f, %f]", pt.Speed, lo, hi)
		}
	}
}

func TestSpawnSpeedFloorsNegativeWind(t *testing.T) {
	p := testParams()
	st := detroitStation()
	st.WindSpeed = -4
	rng := rand.New(rand.NewSource(1))

	pt := spawnParticle(&st, 0, &p, rng)
	if pt.Speed != 0 {
		t.Errorf("expected zero speed for negative wind, got %f", pt.Speed)
	}
}

func TestSpawnAgesDesynchronized(t *testing.T) {
	p := testParams()
	st := detroitStation()
	rng := rand.New(rand.NewSource(7))

	seen := make(map[float64]bool)
	for i := 0; i < 50; i++ {
		pt := spawnParticle(&st, 0, &p, rng)
		seen[pt.Age] = true
	}
	if len(seen) < 40 {
		t.Errorf("expected varied initial ages, got %d distinct of 50", len(seen))
	}
}

func TestDeathCause(t *testing.T) {
	p := testParams()

	testCases := []struct {
		name      string
		age       float64
		dist      float64
		wantDead  bool
		wantCause DeathCause
	}{
		{"young and close", 0.5, 0.1, false, 0},
		{"at range boundary", 0.5, 0.35, false, 0},
		{"beyond range", 0.5, 0.351, true, DeathRange},
		{"at age boundary", 2.2, 0.1, false, 0},
		{"beyond age", 2.201, 0.1, true, DeathAge},
		{"both exceeded", 3.0, 1.0, true, DeathRange},
	}

	for _, tc := range testCases {
		pt := Particle{Age: tc.age}
		cause, dead := deathCause(&pt, tc.dist, &p)
		if dead != tc.wantDead {
			t.Errorf("%s: dead = %v, want %v", tc.name, dead, tc.wantDead)
		}
		if dead && cause != tc.wantCause {
			t.Errorf("%s: cause = %v, want %v", tc.name, cause, tc.wantCause)
		}
	}
}

func TestDegreeDistance(t *testing.T) {
	if d := degreeDistance(42.0, -83.0, 42.0, -83.0); d != 0 {
		t.Errorf("expected zero distance, got %f", d)
	}
	if d := degreeDistance(42.3, -83.0, 42.0, -83.4); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("expected 0.5 degrees, got %f", d)
	}
}
