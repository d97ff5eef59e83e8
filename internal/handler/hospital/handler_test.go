package hospital

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
	NewHandler(directory.NewService(cat, catalog.StaticGeocoder{}), nil).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestListHospitalsDefault(t *testing.T) {
	r := setupRouter(t)

	w, body := doGet(t, r, "/api/v1/hospitals")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"success"`, string(body["status"]))

	var data struct {
		Count     int `json:"count"`
		Hospitals []struct {
			Name   string  `json:"name"`
			Rating float64 `json:"rating"`
		} `json:"hospitals"`
	}
	require.NoError(t, json.Unmarshal(body["data"], &data))
	assert.Equal(t, 20, data.Count)
	for i := 1; i < len(data.Hospitals); i++ {
		assert.GreaterOrEqual(t, data.Hospitals[i-1].Rating, data.Hospitals[i].Rating)
	}
}

func TestListHospitalsFilteredAndSortedByFees(t *testing.T) {
	r := setupRouter(t)

	w, body := doGet(t, r, "/api/v1/hospitals?specialty=Cardiology&max_fees=1500&sort=fees")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Hospitals []struct {
			Name string `json:"name"`
			Fees int    `json:"fees"`
		} `json:"hospitals"`
	}
	require.NoError(t, json.Unmarshal(body["data"], &data))
	require.NotEmpty(t, data.Hospitals)
	assert.Equal(t, "AIIMS", data.Hospitals[0].Name)
	for _, h := range data.Hospitals {
		assert.LessOrEqual(t, h.Fees, 1500)
	}
}

func TestListHospitalsWithLocation(t *testing.T) {
	r := setupRouter(t)

	w, body := doGet(t, r, "/api/v1/hospitals?lat=28.6139&lng=77.2090&max_distance=50&sort=distance")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Hospitals []struct {
			Location   string   `json:"location"`
			DistanceKM *float64 `json:"distance_km"`
		} `json:"hospitals"`
	}
	require.NoError(t, json.Unmarshal(body["data"], &data))
	require.NotEmpty(t, data.Hospitals)
	for _, h := range data.Hospitals {
		require.NotNil(t, h.DistanceKM)
		assert.LessOrEqual(t, *h.DistanceKM, 50.0)
	}
}

func TestListHospitalsBadQueryParams(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{
		"/api/v1/hospitals?max_fees=abc",
		"/api/v1/hospitals?max_wait=-5",
		"/api/v1/hospitals?sort=price",
		"/api/v1/hospitals?lat=28.6",            // lng missing
		"/api/v1/hospitals?lat=north&lng=77.2",  // not a number
		"/api/v1/hospitals?sort=distance",       // no location
	} {
		w, body := doGet(t, r, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
		assert.JSONEq(t, `"error"`, string(body["status"]), "path %s", path)
	}
}

func TestGetHospital(t *testing.T) {
	r := setupRouter(t)

	w, body := doGet(t, r, "/api/v1/hospitals/5")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Name string `json:"name"`
		Fees int    `json:"fees"`
	}
	require.NoError(t, json.Unmarshal(body["data"], &data))
	assert.Equal(t, "AIIMS", data.Name)
	assert.Equal(t, 200, data.Fees)
}

func TestGetHospitalNotFound(t *testing.T) {
	r := setupRouter(t)

	w, _ := doGet(t, r, "/api/v1/hospitals/999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doGet(t, r, "/api/v1/hospitals/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
