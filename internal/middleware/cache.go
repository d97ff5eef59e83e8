package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// CacheConfig represents cache control configuration
type CacheConfig struct {
	MaxAge int
}

// DefaultCacheConfig suits a static catalog: responses change only on
// deploy.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{MaxAge: 3600}
}

// Cache adds cache control headers to catalog GET responses.
func Cache(config CacheConfig) gin.HandlerFunc {
	value := fmt.Sprintf("public, max-age=%d", config.MaxAge)
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}
		c.Header("Cache-Control", value)
		c.Next()
	}
}
