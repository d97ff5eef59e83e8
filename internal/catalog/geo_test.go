package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medatlas/directory-api/internal/model"
)

func TestStaticGeocoderKnownCity(t *testing.T) {
	lat, lng := StaticGeocoder{}.Locate("Mumbai")
	assert.InDelta(t, 19.0760, lat, 0.001)
	assert.InDelta(t, 72.8777, lng, 0.001)

	// Case and whitespace are forgiven.
	lat2, lng2 := StaticGeocoder{}.Locate("  mumbai ")
	assert.Equal(t, lat, lat2)
	assert.Equal(t, lng, lng2)
}

func TestStaticGeocoderFallsBackForUnknownCity(t *testing.T) {
	lat, lng := StaticGeocoder{}.Locate("Atlantis")
	dLat, dLng := StaticGeocoder{}.Locate("Delhi")
	assert.Equal(t, dLat, lat)
	assert.Equal(t, dLng, lng)
}

func TestDistanceKM(t *testing.T) {
	delhi := model.Location{Lat: 28.6139, Lng: 77.2090}

	// Same point is zero distance.
	assert.InDelta(t, 0, DistanceKM(delhi, StaticGeocoder{}, "Delhi"), 0.01)

	// Delhi to Mumbai is roughly 1150 km great-circle.
	d := DistanceKM(delhi, StaticGeocoder{}, "Mumbai")
	assert.Greater(t, d, 1100.0)
	assert.Less(t, d, 1200.0)
}
