package places

import "github.com/medatlas/directory-api/internal/model"

// staticPlaces holds the curated place listings. Only the two flagship
// hospitals have curated data; everything else is synthesized.
var staticPlaces = map[int]map[model.PlaceCategory][]model.NearbyPlace{
	1: { // Apollo Hospitals, Delhi
		model.PlacePharmacy: {
			{ID: 101, Name: "Apollo Pharmacy", Rating: 4.6, DistanceKM: 0.1, Address: "Inside Apollo Hospital, Delhi"},
			{ID: 102, Name: "MedPlus Pharmacy", Rating: 4.3, DistanceKM: 0.5, Address: "Sarita Vihar, Delhi"},
		},
		model.PlaceHotel: {
			{ID: 201, Name: "Hotel Formule1 Delhi", Rating: 4.1, DistanceKM: 1.2, Address: "Mathura Road, Delhi"},
			{ID: 202, Name: "Crowne Plaza", Rating: 4.7, DistanceKM: 2.5, Address: "Okhla, Delhi"},
		},
		model.PlaceFood: {
			{ID: 301, Name: "Hospital Cafeteria", Rating: 3.9, DistanceKM: 0, Address: "Inside Apollo Hospital, Delhi"},
			{ID: 302, Name: "Subway", Rating: 4.2, DistanceKM: 0.8, Address: "Sarita Vihar Market, Delhi"},
		},
	},
	5: { // AIIMS, Delhi
		model.PlacePharmacy: {
			{ID: 103, Name: "AIIMS Pharmacy", Rating: 4.4, DistanceKM: 0, Address: "Inside AIIMS, Delhi"},
			{ID: 104, Name: "Jan Aushadhi Kendra", Rating: 4.5, DistanceKM: 0.3, Address: "Near AIIMS Gate 1, Delhi"},
		},
		model.PlaceHotel: {
			{ID: 203, Name: "Hotel Taj Palace", Rating: 4.8, DistanceKM: 3.5, Address: "Diplomatic Enclave, Delhi"},
			{ID: 204, Name: "Yatri Niwas", Rating: 3.9, DistanceKM: 1.0, Address: "AIIMS Road, Delhi"},
		},
		model.PlaceFood: {
			{ID: 303, Name: "AIIMS Cafeteria", Rating: 3.7, DistanceKM: 0, Address: "Inside AIIMS, Delhi"},
			{ID: 304, Name: "Sagar Ratna", Rating: 4.3, DistanceKM: 0.6, Address: "Green Park, Delhi"},
		},
	},
}

// Name pools for synthesized listings, per category.
var namePool = map[model.PlaceCategory][]string{
	model.PlacePharmacy: {
		"MedPlus Pharmacy", "Apollo Pharmacy", "Wellness Forever", "Jan Aushadhi Kendra",
		"Netmeds Store", "Guardian Pharmacy", "Care & Cure Chemists", "LifeLine Medicos",
	},
	model.PlaceHotel: {
		"Hotel Midtown Residency", "Comfort Inn", "The Park Suites", "City Stay Lodge",
		"Treebo Trend", "FabHotel Prime", "OYO Townhouse", "Ginger Hotel",
	},
	model.PlaceFood: {
		"Hospital Cafeteria", "Sagar Ratna", "Haldiram's", "Cafe Coffee Day",
		"Subway", "Annapurna Mess", "Healthy Bites", "South Indian Corner",
	},
}
