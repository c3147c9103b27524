package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bizhub-backend/internal/config"
)

// RateLimitMiddleware limits request rate per client IP. Static assets and
// published sites bypass the limit.
func RateLimitMiddleware(cfg *config.Config, manager *RateLimitManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if manager == nil || shouldBypassRateLimit(c.Request) {
			c.Next()
			return
		}

		limiter := manager.GetVisitor(c.ClientIP(), cfg.RateLimitRequests, cfg.RateLimitWindow)
		if limiter == nil {
			c.Next()
			return
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func shouldBypassRateLimit(r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}

	path := r.URL.Path
	for _, prefix := range []string{"/uploads/", "/site/"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return path == "/favicon.ico" || path == "/health"
}
