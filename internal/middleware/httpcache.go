package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahamedusman/portfolio-core/internal/pkg/redis"
)

const (
	apiCachePrefix          = "portfolio:api-cache:"
	defaultHTTPCacheTTL     = 15 * time.Second
	defaultHTTPCacheMaxBody = 1 << 20 // 1 MiB
)

type cachedHTTPResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	BodyBase64  string `json:"body_base64"`
	Body        []byte `json:"-"`
}

type cacheBodyWriter struct {
	gin.ResponseWriter
	body     []byte
	overflow bool
}

func (w *cacheBodyWriter) Write(data []byte) (int, error) {
	w.capture(data)
	return w.ResponseWriter.Write(data)
}

func (w *cacheBodyWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *cacheBodyWriter) capture(data []byte) {
	if w.overflow || len(data) == 0 {
		return
	}
	remaining := defaultHTTPCacheMaxBody - len(w.body)
	if remaining <= 0 {
		w.overflow = true
		return
	}
	if len(data) > remaining {
		w.body = append(w.body, data[:remaining]...)
		w.overflow = true
		return
	}
	w.body = append(w.body, data...)
}

// HTTPCache serves repeated GET requests from Redis. With a nil client it is
// a pass-through, so the server runs fine without Redis.
func HTTPCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = defaultHTTPCacheTTL
	}
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := apiCachePrefix + c.Request.URL.RequestURI()

		if raw, err := rdb.Get(ctx, cacheKey); err == nil && raw != "" {
			if payload, ok := decodeCachedResponse(raw); ok {
				c.Header("x-api-cache", "hit")
				c.Data(payload.Status, payload.ContentType, payload.Body)
				c.Abort()
				return
			}
		}

		buffer := &cacheBodyWriter{ResponseWriter: c.Writer}
		c.Writer = buffer
		c.Next()

		status := c.Writer.Status()
		if status != http.StatusOK || buffer.overflow || len(buffer.body) == 0 {
			return
		}
		cacheControl := strings.ToLower(c.Writer.Header().Get("Cache-Control"))
		if strings.Contains(cacheControl, "no-store") || strings.Contains(cacheControl, "private") {
			return
		}

		payload := cachedHTTPResponse{
			Status:      status,
			ContentType: c.Writer.Header().Get("Content-Type"),
			BodyBase64:  base64.StdEncoding.EncodeToString(buffer.body),
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return
		}
		_ = rdb.Set(ctx, cacheKey, raw, ttl)
	}
}

// CacheInvalidate purges cached GET responses after any successful write,
// so a newly created document shows up in the next list request.
func CacheInvalidate(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if rdb == nil || c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() < http.StatusBadRequest {
			_ = rdb.DelPrefix(c.Request.Context(), apiCachePrefix)
		}
	}
}

func decodeCachedResponse(raw string) (cachedHTTPResponse, bool) {
	var payload cachedHTTPResponse
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return cachedHTTPResponse{}, false
	}
	if payload.Status <= 0 {
		payload.Status = http.StatusOK
	}
	if payload.ContentType == "" {
		payload.ContentType = "application/json; charset=utf-8"
	}
	body, err := base64.StdEncoding.DecodeString(payload.BodyBase64)
	if err != nil {
		return cachedHTTPResponse{}, false
	}
	payload.Body = body
	return payload, true
}
