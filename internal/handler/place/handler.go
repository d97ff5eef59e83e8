package place

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medatlas/directory-api/internal/handler"
	"github.com/medatlas/directory-api/internal/model"
	"github.com/medatlas/directory-api/internal/service/directory"
	"github.com/medatlas/directory-api/internal/service/places"
	apperrors "github.com/medatlas/directory-api/pkg/errors"
	"github.com/medatlas/directory-api/pkg/metrics"
)

type Handler struct {
	directory *directory.Service
	places    *places.Service
	metrics   *metrics.Metrics
}

func NewHandler(dir *directory.Service, svc *places.Service, m *metrics.Metrics) *Handler {
	return &Handler{directory: dir, places: svc, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/hospitals/:id/places/:category", h.ListPlaces)
}

// ListPlaces returns places near a hospital for one category, filtered
// by max_distance (km, inclusive) and sorted by the requested key.
//
// Query params: max_distance (default: no limit), sort
// (distance|rating|price_asc|price_desc|popularity, default distance).
func (h *Handler) ListPlaces(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handler.AbortWithError(c, apperrors.NewBadRequest("invalid hospital ID", err))
		return
	}
	if _, ok := h.directory.Catalog().ByID(id); !ok {
		handler.AbortWithError(c, apperrors.NewNotFound("hospital", nil))
		return
	}

	category := model.PlaceCategory(c.Param("category"))
	if !category.Valid() {
		handler.AbortWithError(c, apperrors.NewBadRequest("invalid place category", nil))
		return
	}

	maxDistance := math.MaxFloat64
	if raw := c.Query("max_distance"); raw != "" {
		maxDistance, err = strconv.ParseFloat(raw, 64)
		if err != nil || maxDistance < 0 {
			handler.AbortWithError(c, apperrors.NewBadRequest("invalid max_distance", err))
			return
		}
	}

	sortKey := model.PlaceSortKey(c.DefaultQuery("sort", string(model.PlaceSortDistance)))
	if !sortKey.Valid() {
		handler.AbortWithError(c, apperrors.NewBadRequest("invalid sort key", nil))
		return
	}

	listings := h.places.Listings(id, category)
	results := places.FilterAndSort(listings, maxDistance, sortKey)

	if h.metrics != nil {
		h.metrics.PlacesQueries.WithLabelValues(string(category)).Inc()
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"places": results,
		"count":  len(results),
	}))
}
