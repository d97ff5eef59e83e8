package places

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medatlas/directory-api/internal/model"
)

func newTestService() *Service {
	return NewService(time.Minute)
}

func TestListingsCuratedHospitals(t *testing.T) {
	svc := newTestService()

	pharmacies := svc.Listings(1, model.PlacePharmacy)
	require.Len(t, pharmacies, 2)
	assert.Equal(t, "Apollo Pharmacy", pharmacies[0].Name)

	hotels := svc.Listings(5, model.PlaceHotel)
	require.Len(t, hotels, 2)
	assert.Equal(t, "Hotel Taj Palace", hotels[0].Name)
}

func TestListingsSynthesizedAreDeterministic(t *testing.T) {
	svc := newTestService()

	first := svc.Listings(3, model.PlaceFood)
	second := svc.Listings(3, model.PlaceFood)
	assert.Equal(t, first, second)

	// A fresh service (empty cache) regenerates the same listing.
	other := newTestService().Listings(3, model.PlaceFood)
	assert.Equal(t, first, other)

	require.NotEmpty(t, first)
	for _, p := range first {
		assert.GreaterOrEqual(t, p.Rating, 3.5)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.DistanceKM, 0.0)
		assert.NotEmpty(t, p.Name)
	}
}

func TestListingsDifferPerCategory(t *testing.T) {
	svc := newTestService()

	food := svc.Listings(7, model.PlaceFood)
	hotels := svc.Listings(7, model.PlaceHotel)
	assert.NotEqual(t, food, hotels)
}

func TestFilterAndSortInclusiveBoundary(t *testing.T) {
	places := []model.NearbyPlace{
		{ID: 1, Name: "on the line", DistanceKM: 5.0},
		{ID: 2, Name: "just beyond", DistanceKM: 5.001},
		{ID: 3, Name: "inside", DistanceKM: 1.0},
	}

	out := FilterAndSort(places, 5, model.PlaceSortDistance)
	require.Len(t, out, 2)
	assert.Equal(t, "inside", out[0].Name)
	assert.Equal(t, "on the line", out[1].Name)
}

func TestFilterAndSortByRatingDescending(t *testing.T) {
	svc := newTestService()
	pharmacies := svc.Listings(1, model.PlacePharmacy)

	out := FilterAndSort(pharmacies, 5, model.PlaceSortRating)
	require.NotEmpty(t, out)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Rating, out[i].Rating)
	}
	for _, p := range out {
		assert.LessOrEqual(t, p.DistanceKM, 5.0)
	}
}

func TestFilterAndSortPseudoFields(t *testing.T) {
	places := []model.NearbyPlace{{ID: 11}, {ID: 7}, {ID: 42}, {ID: 3}}

	asc := FilterAndSort(places, 100, model.PlaceSortPriceAsc)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].PriceLevel(), asc[i].PriceLevel())
	}

	desc := FilterAndSort(places, 100, model.PlaceSortPriceDesc)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].PriceLevel(), desc[i].PriceLevel())
	}

	pop := FilterAndSort(places, 100, model.PlaceSortPopularity)
	for i := 1; i < len(pop); i++ {
		assert.GreaterOrEqual(t, pop[i-1].Popularity(), pop[i].Popularity())
	}

	// Pseudo-fields are pure functions of the id.
	assert.Equal(t, model.NearbyPlace{ID: 11}.PriceLevel(), model.NearbyPlace{ID: 11}.PriceLevel())
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	places := []model.NearbyPlace{
		{ID: 1, DistanceKM: 3},
		{ID: 2, DistanceKM: 1},
		{ID: 3, DistanceKM: 2},
	}

	_ = FilterAndSort(places, 10, model.PlaceSortDistance)
	assert.Equal(t, 1, places[0].ID)
	assert.Equal(t, 2, places[1].ID)
	assert.Equal(t, 3, places[2].ID)
}
