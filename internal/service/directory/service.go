// Package directory implements the hospital filter and ranking engine.
// Rank is a pure function over its inputs: no state, no side effects,
// safe to call at any rate.
package directory

import (
	"sort"

	"github.com/medatlas/directory-api/internal/catalog"
	"github.com/medatlas/directory-api/internal/model"
)

type Service struct {
	catalog  *catalog.Catalog
	geocoder catalog.Geocoder
}

func NewService(cat *catalog.Catalog, geocoder catalog.Geocoder) *Service {
	return &Service{catalog: cat, geocoder: geocoder}
}

// Catalog exposes the underlying dataset for lookup endpoints.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Rank filters the catalog by the given preferences and returns the
// surviving records ordered by sortKey. Ties keep catalog order (stable
// sort). An unmatched filter yields an empty result, never an error.
//
// Distance is computed only when loc is non-nil; a max-distance
// constraint without a location is vacuously satisfied, and a distance
// sort without a location is rejected by the HTTP layer before this
// call (the engine falls back to catalog order in that case).
func (s *Service) Rank(prefs model.Preferences, loc *model.Location, sortKey model.SortKey) []model.RankedHospital {
	pool := s.catalog.Hospitals()
	if prefs.Specialty != "" && prefs.Specialty != model.SpecialtyAll {
		pool = s.catalog.BySpecialty(prefs.Specialty)
	}

	results := make([]model.RankedHospital, 0, len(pool))

	for _, h := range pool {
		var dist *float64
		if loc != nil {
			d := catalog.DistanceKM(*loc, s.geocoder, h.Location)
			dist = &d
		}
		if !s.matches(&h, prefs, dist) {
			continue
		}
		results = append(results, model.RankedHospital{Hospital: h, DistanceKM: dist})
	}

	sortRanked(results, sortKey)
	return results
}

func (s *Service) matches(h *model.Hospital, prefs model.Preferences, dist *float64) bool {
	if prefs.MaxFees != nil && h.Fees > *prefs.MaxFees {
		return false
	}
	if prefs.MaxWaitTime != nil && h.WaitingTime > *prefs.MaxWaitTime {
		return false
	}
	if prefs.MaxDistance != nil && dist != nil && *dist > float64(*prefs.MaxDistance) {
		return false
	}
	return true
}

func sortRanked(hs []model.RankedHospital, key model.SortKey) {
	switch key {
	case model.SortByRating:
		sort.SliceStable(hs, func(i, j int) bool { return hs[i].Rating > hs[j].Rating })
	case model.SortByFees:
		sort.SliceStable(hs, func(i, j int) bool { return hs[i].Fees < hs[j].Fees })
	case model.SortByWaitingTime:
		sort.SliceStable(hs, func(i, j int) bool { return hs[i].WaitingTime < hs[j].WaitingTime })
	case model.SortByDistance:
		sort.SliceStable(hs, func(i, j int) bool {
			if hs[i].DistanceKM == nil || hs[j].DistanceKM == nil {
				return false
			}
			return *hs[i].DistanceKM < *hs[j].DistanceKM
		})
	}
}
