package model

// PlaceCategory groups nearby places by what they offer to visitors.
type PlaceCategory string

const (
	PlacePharmacy PlaceCategory = "pharmacy"
	PlaceHotel    PlaceCategory = "hotel"
	PlaceFood     PlaceCategory = "food"
)

// Valid reports whether the category is one of the supported kinds.
func (c PlaceCategory) Valid() bool {
	switch c {
	case PlacePharmacy, PlaceHotel, PlaceFood:
		return true
	}
	return false
}

// PlaceCategories lists all supported categories in display order.
var PlaceCategories = []PlaceCategory{PlacePharmacy, PlaceHotel, PlaceFood}

// NearbyPlace is a place of interest close to a hospital. Price and
// popularity are demo pseudo-fields derived deterministically from the
// place id so that sort orders are stable and reproducible.
type NearbyPlace struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	DistanceKM float64 `json:"distance"`
	Address    string  `json:"address"`
}

// PriceLevel is a stable pseudo-price in currency units derived from the
// place id. It exists only to give the demo dataset sortable variety.
func (p NearbyPlace) PriceLevel() int {
	return 50 + (p.ID*73)%450
}

// Popularity is a stable pseudo-popularity score derived from the place id.
func (p NearbyPlace) Popularity() int {
	return (p.ID * 31) % 1000
}

// PlaceSortKey selects the ordering applied to nearby-place results.
type PlaceSortKey string

const (
	PlaceSortDistance   PlaceSortKey = "distance"
	PlaceSortRating     PlaceSortKey = "rating"
	PlaceSortPriceAsc   PlaceSortKey = "price_asc"
	PlaceSortPriceDesc  PlaceSortKey = "price_desc"
	PlaceSortPopularity PlaceSortKey = "popularity"
)

// Valid reports whether the sort key is one of the supported orderings.
func (k PlaceSortKey) Valid() bool {
	switch k {
	case PlaceSortDistance, PlaceSortRating, PlaceSortPriceAsc, PlaceSortPriceDesc, PlaceSortPopularity:
		return true
	}
	return false
}
