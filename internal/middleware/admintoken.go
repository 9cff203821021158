package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

// AdminToken guards write endpoints with a static bearer token. When no
// token is configured the guard is open and a warning is logged once at
// startup, which keeps local development friction-free.
func AdminToken(token string, log *zap.Logger) gin.HandlerFunc {
	if token == "" {
		if log != nil {
			log.Warn("admin_token is not configured, write endpoints are unauthenticated")
		}
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			response.Unauthorized(c, "Invalid or missing token")
			return
		}
		c.Next()
	}
}
