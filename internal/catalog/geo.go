package catalog

import (
	"math"
	"strings"

	"github.com/medatlas/directory-api/internal/model"
)

// Geocoder resolves a hospital's city to coordinates. The shipped
// implementation is a static table; a real geocoding backend can be
// plugged in without touching the ranking engine.
type Geocoder interface {
	Locate(city string) (lat, lng float64)
}

// cityCoords covers the cities present in the catalog. Unknown cities
// resolve to the Delhi fallback so distance stays a total function.
var cityCoords = map[string]struct{ lat, lng float64 }{
	"delhi":     {28.6139, 77.2090},
	"mumbai":    {19.0760, 72.8777},
	"bangalore": {12.9716, 77.5946},
	"gurugram":  {28.4595, 77.0266},
	"vellore":   {12.9165, 79.1325},
	"pune":      {18.5204, 73.8567},
}

var fallbackCoord = struct{ lat, lng float64 }{28.6139, 77.2090}

// StaticGeocoder resolves cities from the built-in coordinate table.
type StaticGeocoder struct{}

// Locate returns the coordinates for a city, or the fallback coordinate
// when the city is not in the table.
func (StaticGeocoder) Locate(city string) (float64, float64) {
	if c, ok := cityCoords[strings.ToLower(strings.TrimSpace(city))]; ok {
		return c.lat, c.lng
	}
	return fallbackCoord.lat, fallbackCoord.lng
}

const earthRadiusKM = 6371.0

// DistanceKM computes the great-circle distance between a user location
// and a hospital's city using the haversine formula.
func DistanceKM(loc model.Location, g Geocoder, city string) float64 {
	lat2, lng2 := g.Locate(city)
	return haversine(loc.Lat, loc.Lng, lat2, lng2)
}

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
