package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahamedusman/portfolio-core/internal/pkg/redis"
	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

const (
	rateLimitMax    = 50
	rateLimitWindow = time.Second
)

// RateLimit enforces a per-second per-IP request cap. Pass-through when
// Redis is unavailable.
func RateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		key := fmt.Sprintf("portfolio:rate_limit:%s:%d", ip, time.Now().Unix())
		count, err := rdb.Incr(c.Request.Context(), key, rateLimitWindow+time.Second)
		if err != nil {
			c.Next()
			return
		}

		if count > rateLimitMax {
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
