package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		tolerance              float64
	}{
		{"same point", 37.7749, -122.4194, 37.7749, -122.4194, 0, 0.001},
		{"san francisco to los angeles", 37.7749, -122.4194, 34.0522, -118.2437, 559, 5},
		{"london to paris", 51.5074, -0.1278, 48.8566, 2.3522, 344, 5},
		{"equator quarter circumference", 0, 0, 0, 90, 10007, 20},
		{"pole to pole", 90, 0, -90, 0, 20015, 20},
		{"antimeridian crossing", 0, 179.5, 0, -179.5, 111.2, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceKm(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			if math.Abs(got-tc.expected) > tc.tolerance {
				t.Errorf("DistanceKm(%v, %v, %v, %v) = %v; want %v ± %v",
					tc.lat1, tc.lon1, tc.lat2, tc.lon2, got, tc.expected, tc.tolerance)
			}
		})
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(37.7749, -122.4194, 48.8566, 2.3522)
	b := DistanceKm(48.8566, 2.3522, 37.7749, -122.4194)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}
