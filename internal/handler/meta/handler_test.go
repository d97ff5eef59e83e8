package meta

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medatlas/directory-api/internal/catalog"
	"github.com/medatlas/directory-api/internal/service/directory"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load()
	require.NoError(t, err)

	r := gin.New()
	NewHandler(directory.NewService(cat, catalog.StaticGeocoder{})).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func getData(t *testing.T, r *gin.Engine, path string) json.RawMessage {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "path %s", path)

	var body struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	return body.Data
}

func TestListSpecialties(t *testing.T) {
	r := setupRouter(t)

	var specialties []string
	require.NoError(t, json.Unmarshal(getData(t, r, "/api/v1/meta/specialties"), &specialties))
	assert.NotEmpty(t, specialties)
	assert.Contains(t, specialties, "Cardiology")
	assert.IsNonDecreasing(t, specialties)
}

func TestListLocations(t *testing.T) {
	r := setupRouter(t)

	var locations []string
	require.NoError(t, json.Unmarshal(getData(t, r, "/api/v1/meta/locations"), &locations))
	assert.Contains(t, locations, "Delhi")
	assert.Contains(t, locations, "Mumbai")
	assert.IsNonDecreasing(t, locations)
}

func TestListQuestions(t *testing.T) {
	r := setupRouter(t)

	var questions []string
	require.NoError(t, json.Unmarshal(getData(t, r, "/api/v1/meta/questions"), &questions))
	require.Len(t, questions, 6)
	assert.Contains(t, questions, "How do I book an appointment?")
}

func TestListLanguages(t *testing.T) {
	r := setupRouter(t)

	var languages []struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(getData(t, r, "/api/v1/meta/languages"), &languages))
	require.Len(t, languages, 10)
	assert.Equal(t, "English", languages[0].Name)
	assert.Equal(t, "en", languages[0].Code)
}
