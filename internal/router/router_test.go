package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/medatlas/directory-api/internal/handler"
	"github.com/medatlas/directory-api/pkg/logger"
)

type echoHandler struct{}

func (echoHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}

func newTestRouter(config Config) *Router {
	if config.Logger == nil {
		config.Logger = logger.NewLogger(&logger.Config{
			Level:  logger.ErrorLevel,
			Output: &bytes.Buffer{},
		})
	}
	r := NewRouter(handler.New(), config, echoHandler{})
	r.Setup()
	return r
}

func TestRouterServesRegisteredHandlers(t *testing.T) {
	r := newTestRouter(Config{RateLimit: 100, RateBurst: 10})

	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/echo", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.0", w.Header().Get("X-API-Version"))
}

// A Config without a timeout must not expire requests immediately; the
// default applies instead.
func TestRouterZeroTimeoutUsesDefault(t *testing.T) {
	r := newTestRouter(Config{RateLimit: 100, RateBurst: 10})

	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, http.StatusGatewayTimeout, w.Code)
}

func TestRouterHealthEndpoints(t *testing.T) {
	r := newTestRouter(Config{RateLimit: 100, RateBurst: 10})

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		w := httptest.NewRecorder()
		r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}
