package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cat.Len())

	aiims, ok := cat.ByID(5)
	require.True(t, ok)
	assert.Equal(t, "AIIMS", aiims.Name)
	assert.Equal(t, 200, aiims.Fees)
	assert.Equal(t, "government", string(aiims.Category))
	assert.Len(t, aiims.AppointmentSteps, 6)
	assert.LessOrEqual(t, aiims.EstimatedCost.Min, aiims.EstimatedCost.Max)

	_, ok = cat.ByID(999)
	assert.False(t, ok)
}

func TestLoadRejectsBadData(t *testing.T) {
	_, err := loadFrom([]byte(`not json`))
	assert.Error(t, err)

	_, err = loadFrom([]byte(`[]`))
	assert.Error(t, err)

	// Rating outside [0,5] fails validation.
	_, err = loadFrom([]byte(`[{"id":1,"name":"X","location":"Delhi","specialties":["Cardiology"],"rating":9.1,"category":"private","estimated_cost":{"min":0,"max":0}}]`))
	assert.Error(t, err)

	// Duplicate ids are rejected.
	_, err = loadFrom([]byte(`[
		{"id":1,"name":"X","location":"Delhi","specialties":["Cardiology"],"rating":4,"category":"private","estimated_cost":{"min":0,"max":0}},
		{"id":1,"name":"Y","location":"Delhi","specialties":["Cardiology"],"rating":4,"category":"private","estimated_cost":{"min":0,"max":0}}
	]`))
	assert.Error(t, err)
}

func TestSpecialtiesAndLocationsAreUniqueAndSorted(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	specialties := cat.Specialties()
	seen := map[string]bool{}
	for _, s := range specialties {
		assert.False(t, seen[s], "duplicate specialty %q", s)
		seen[s] = true
	}
	assert.Contains(t, specialties, "Cardiology")
	assert.Contains(t, specialties, "Oncology")

	locations := cat.Locations()
	assert.ElementsMatch(t, []string{"Bangalore", "Delhi", "Gurugram", "Mumbai", "Pune", "Vellore"}, locations)
	assert.IsNonDecreasing(t, locations)
}

func TestBySpecialtyIsCaseInsensitive(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	lower := cat.BySpecialty("cardiology")
	upper := cat.BySpecialty("Cardiology")
	assert.Equal(t, upper, lower)
	assert.NotEmpty(t, lower)
}
