package station

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		station Station
		wantErr bool
	}{
		{"valid", Station{ID: "a", Lat: 42.33, Lon: -83.05}, false},
		{"nan lat", Station{ID: "b", Lat: math.NaN(), Lon: -83.05}, true},
		{"nan lon", Station{ID: "c", Lat: 42.33, Lon: math.NaN()}, true},
		{"lat too high", Station{ID: "d", Lat: 91, Lon: 0}, true},
		{"lon too low", Station{ID: "e", Lat: 0, Lon: -181}, true},
		{"equator origin is valid", Station{ID: "f", Lat: 0, Lon: 0}, false},
		{"negative wind is valid", Station{ID: "g", Lat: 10, Lon: 10, WindSpeed: -3}, false},
	}

	for _, tc := range testCases {
		err := tc.station.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestValidateErrorType(t *testing.T) {
	s := Station{ID: "bad", Lat: math.NaN(), Lon: 0}
	err := s.Validate()

	var invalid *InvalidStationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidStationError, got %T", err)
	}
	if invalid.ID != "bad" {
		t.Errorf("expected error to carry station id, got %q", invalid.ID)
	}
}

func TestEffectiveFloors(t *testing.T) {
	s := Station{WindSpeed: -5, Pollution: -12}
	if s.EffectiveWindSpeed() != 0 {
		t.Errorf("expected negative wind floored to 0, got %f", s.EffectiveWindSpeed())
	}
	if s.EffectivePollution() != 0 {
		t.Errorf("expected negative pollution floored to 0, got %f", s.EffectivePollution())
	}

	s = Station{WindSpeed: 11, Pollution: 58.4}
	if s.EffectiveWindSpeed() != 11 {
		t.Errorf("expected wind 11, got %f", s.EffectiveWindSpeed())
	}
	if s.EffectivePollution() != 58.4 {
		t.Errorf("expected pollution 58.4, got %f", s.EffectivePollution())
	}
}

func TestNormalizeDirection(t *testing.T) {
	testCases := []struct{ in, want float64 }{
		{0, 0},
		{240, 240},
		{360, 0},
		{420, 60},
		{-30, 330},
		{-720, 0},
	}
	for _, tc := range testCases {
		if got := NormalizeDirection(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NormalizeDirection(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}
