// Package places serves nearby-place listings per hospital and category.
// Listings come from a small curated table or are synthesized
// deterministically from the hospital id, so repeated requests for the
// same hospital always see the same places.
package places

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/medatlas/directory-api/internal/model"
)

const (
	synthMin = 4 // listings per synthesized category
	synthMax = 6
)

type Service struct {
	cache *gocache.Cache
}

func NewService(cacheTTL time.Duration) *Service {
	return &Service{
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Listings returns the place list for a hospital and category. Curated
// entries win; otherwise a deterministic synthetic list is generated and
// cached.
func (s *Service) Listings(hospitalID int, category model.PlaceCategory) []model.NearbyPlace {
	if byCat, ok := staticPlaces[hospitalID]; ok {
		if places, ok := byCat[category]; ok {
			return places
		}
	}

	key := fmt.Sprintf("%d/%s", hospitalID, category)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]model.NearbyPlace)
	}

	places := synthesize(hospitalID, category)
	s.cache.Set(key, places, gocache.DefaultExpiration)
	return places
}

// FilterAndSort keeps places within maxDistance kilometres (inclusive
// boundary) and orders them by the given key. Stable and pure: the input
// slice is never mutated.
func FilterAndSort(places []model.NearbyPlace, maxDistance float64, key model.PlaceSortKey) []model.NearbyPlace {
	out := make([]model.NearbyPlace, 0, len(places))
	for _, p := range places {
		if p.DistanceKM <= maxDistance {
			out = append(out, p)
		}
	}

	switch key {
	case model.PlaceSortDistance:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKM < out[j].DistanceKM })
	case model.PlaceSortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case model.PlaceSortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceLevel() < out[j].PriceLevel() })
	case model.PlaceSortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceLevel() > out[j].PriceLevel() })
	case model.PlaceSortPopularity:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity() > out[j].Popularity() })
	}
	return out
}

// synthesize builds a stable demo listing for hospitals without curated
// data. The seed derives from the hospital id and category only.
func synthesize(hospitalID int, category model.PlaceCategory) []model.NearbyPlace {
	catIdx := categoryIndex(category)
	rng := rand.New(rand.NewSource(int64(hospitalID)*31 + int64(catIdx)))

	pool := namePool[category]
	count := synthMin + rng.Intn(synthMax-synthMin+1)
	if count > len(pool) {
		count = len(pool)
	}

	// Pick distinct names from the pool.
	perm := rng.Perm(len(pool))

	places := make([]model.NearbyPlace, 0, count)
	for i := 0; i < count; i++ {
		places = append(places, model.NearbyPlace{
			ID:         hospitalID*1000 + catIdx*100 + i,
			Name:       pool[perm[i]],
			Rating:     round1(3.5 + rng.Float64()*1.3),
			DistanceKM: round1(rng.Float64() * 5),
			Address:    fmt.Sprintf("Near hospital campus, zone %d", i+1),
		})
	}
	return places
}

func categoryIndex(category model.PlaceCategory) int {
	for i, c := range model.PlaceCategories {
		if c == category {
			return i
		}
	}
	return 0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
