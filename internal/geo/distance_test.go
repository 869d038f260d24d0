package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	lagos := Coordinate{Latitude: 6.5244, Longitude: 3.3792}
	abuja := Coordinate{Latitude: 9.0765, Longitude: 7.3986}

	t.Run("known city pair", func(t *testing.T) {
		km, err := Distance(lagos, abuja)
		assert.NoError(t, err)
		// Lagos to Abuja is roughly 520 km by great circle.
		assert.InDelta(t, 520, km, 15)
	})

	t.Run("symmetric", func(t *testing.T) {
		ab, err := Distance(lagos, abuja)
		assert.NoError(t, err)
		ba, err := Distance(abuja, lagos)
		assert.NoError(t, err)
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("identical points", func(t *testing.T) {
		km, err := Distance(lagos, lagos)
		assert.NoError(t, err)
		assert.InDelta(t, 0, km, 1e-9)
	})

	t.Run("antipodal points stay finite", func(t *testing.T) {
		km, err := Distance(Coordinate{0, 0}, Coordinate{0, 180})
		assert.NoError(t, err)
		assert.InDelta(t, EarthRadiusKm*3.14159265, km, 1)
	})
}

func TestDistance_InvalidInput(t *testing.T) {
	valid := Coordinate{Latitude: 6.5244, Longitude: 3.3792}

	tests := []struct {
		name string
		a, b Coordinate
	}{
		{"latitude too high", Coordinate{91, 0}, valid},
		{"latitude too low", Coordinate{-90.01, 0}, valid},
		{"longitude too high", valid, Coordinate{0, 180.5}},
		{"longitude too low", valid, Coordinate{0, -181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Distance(tt.a, tt.b)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}
