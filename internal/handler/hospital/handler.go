package hospital

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medatlas/directory-api/internal/handler"
	"github.com/medatlas/directory-api/internal/model"
	"github.com/medatlas/directory-api/internal/service/directory"
	apperrors "github.com/medatlas/directory-api/pkg/errors"
	"github.com/medatlas/directory-api/pkg/metrics"
)

type Handler struct {
	service *directory.Service
	metrics *metrics.Metrics
}

func NewHandler(service *directory.Service, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	hospitals := r.Group("/hospitals")
	{
		hospitals.GET("", h.ListHospitals)
		hospitals.GET("/:id", h.GetHospital)
	}
}

// ListHospitals ranks the catalog against the caller's filters.
//
// Query params: specialty, max_fees, max_wait, max_distance, sort
// (rating|fees|waiting_time|distance), lat, lng. Sorting by distance
// requires lat and lng.
func (h *Handler) ListHospitals(c *gin.Context) {
	prefs, err := parsePreferences(c)
	if err != nil {
		handler.AbortWithError(c, err)
		return
	}

	loc, err := parseLocation(c)
	if err != nil {
		handler.AbortWithError(c, err)
		return
	}

	sortKey := model.SortKey(c.DefaultQuery("sort", string(model.SortByRating)))
	if !sortKey.Valid() {
		handler.AbortWithError(c, apperrors.NewBadRequest("invalid sort key", nil))
		return
	}
	if sortKey == model.SortByDistance && loc == nil {
		handler.AbortWithError(c, apperrors.NewBadRequest("sorting by distance requires lat and lng", nil))
		return
	}

	results := h.service.Rank(prefs, loc, sortKey)

	if h.metrics != nil {
		h.metrics.RankQueries.WithLabelValues(string(sortKey)).Inc()
		if len(results) == 0 {
			h.metrics.EmptyRankTotal.Inc()
		}
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"hospitals": results,
		"count":     len(results),
	}))
}

func (h *Handler) GetHospital(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handler.AbortWithError(c, apperrors.NewBadRequest("invalid hospital ID", err))
		return
	}

	hospital, ok := h.service.Catalog().ByID(id)
	if !ok {
		handler.AbortWithError(c, apperrors.NewNotFound("hospital", nil))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(hospital))
}

func parsePreferences(c *gin.Context) (model.Preferences, error) {
	prefs := model.Preferences{Specialty: c.Query("specialty")}

	for _, q := range []struct {
		name string
		dst  **int
	}{
		{"max_fees", &prefs.MaxFees},
		{"max_wait", &prefs.MaxWaitTime},
		{"max_distance", &prefs.MaxDistance},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return prefs, apperrors.NewBadRequest("invalid query parameter: "+q.name, err)
		}
		*q.dst = &v
	}
	return prefs, nil
}

// parseLocation reads lat/lng; both must be present together.
func parseLocation(c *gin.Context) (*model.Location, error) {
	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw == "" && lngRaw == "" {
		return nil, nil
	}
	lat, errLat := strconv.ParseFloat(latRaw, 64)
	lng, errLng := strconv.ParseFloat(lngRaw, 64)
	if errLat != nil || errLng != nil {
		return nil, apperrors.NewBadRequest("invalid query parameter: lat/lng", nil)
	}
	return &model.Location{Lat: lat, Lng: lng}, nil
}
