package model

import "strings"

// Category classifies how a hospital is funded and operated.
type Category string

const (
	CategoryPrivate    Category = "private"
	CategoryGovernment Category = "government"
)

// CostRange is the estimated cost band for a full course of treatment.
type CostRange struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"gtefield=Min"`
}

// Hospital is a single catalog record. Records are loaded once at startup
// and never mutated afterwards.
type Hospital struct {
	ID               int       `json:"id" validate:"required,gt=0"`
	Name             string    `json:"name" validate:"required"`
	Location         string    `json:"location" validate:"required"`
	Specialties      []string  `json:"specialties" validate:"required,min=1"`
	WaitingTime      int       `json:"waiting_time" validate:"gte=0"`
	Fees             int       `json:"fees" validate:"gte=0"`
	Rating           float64   `json:"rating" validate:"gte=0,lte=5"`
	Category         Category  `json:"category" validate:"required,oneof=private government"`
	Address          string    `json:"address,omitempty"`
	Contact          string    `json:"contact,omitempty"`
	Email            string    `json:"email,omitempty"`
	Website          string    `json:"website,omitempty"`
	AppointmentSteps []string  `json:"appointment_steps,omitempty"`
	EstimatedCost    CostRange `json:"estimated_cost"`
}

// HasSpecialty reports whether the hospital offers the given specialty,
// matched case-insensitively.
func (h *Hospital) HasSpecialty(specialty string) bool {
	for _, s := range h.Specialties {
		if strings.EqualFold(s, specialty) {
			return true
		}
	}
	return false
}

// SortKey selects the ordering applied to ranked hospital results.
type SortKey string

const (
	SortByRating      SortKey = "rating"
	SortByFees        SortKey = "fees"
	SortByWaitingTime SortKey = "waiting_time"
	SortByDistance    SortKey = "distance"
)

// Valid reports whether the sort key is one of the supported orderings.
func (k SortKey) Valid() bool {
	switch k {
	case SortByRating, SortByFees, SortByWaitingTime, SortByDistance:
		return true
	}
	return false
}

// Preferences holds the user-selected constraints narrowing the catalog.
// A nil threshold means the corresponding constraint is not applied.
// SpecialtyAll (or an empty specialty) disables the specialty filter.
type Preferences struct {
	Specialty   string `json:"specialty" form:"specialty"`
	MaxFees     *int   `json:"max_fees" form:"max_fees"`
	MaxWaitTime *int   `json:"max_wait" form:"max_wait"`
	MaxDistance *int   `json:"max_distance" form:"max_distance"`
}

// SpecialtyAll is the sentinel value meaning "no specialty filter".
const SpecialtyAll = "All"

// Location is an already-resolved user position. Acquisition (device
// geolocation, manual entry) is the caller's concern.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// RankedHospital decorates a catalog record with the distance computed
// for the requesting user, when a location was supplied.
type RankedHospital struct {
	Hospital
	DistanceKM *float64 `json:"distance_km,omitempty"`
}
