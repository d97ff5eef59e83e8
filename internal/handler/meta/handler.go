package meta

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medatlas/directory-api/internal/handler"
	"github.com/medatlas/directory-api/internal/service/chat"
	"github.com/medatlas/directory-api/internal/service/directory"
)

// Handler serves the lookup lists the UI needs to build its filter and
// chat widgets.
type Handler struct {
	directory *directory.Service
}

func NewHandler(dir *directory.Service) *Handler {
	return &Handler{directory: dir}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	meta := r.Group("/meta")
	{
		meta.GET("/specialties", h.ListSpecialties)
		meta.GET("/locations", h.ListLocations)
		meta.GET("/questions", h.ListQuestions)
		meta.GET("/languages", h.ListLanguages)
	}
}

func (h *Handler) ListSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.directory.Catalog().Specialties()))
}

func (h *Handler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.directory.Catalog().Locations()))
}

func (h *Handler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(chat.PredefinedQuestions()))
}

func (h *Handler) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(chat.SupportedLanguages()))
}
