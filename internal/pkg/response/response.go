// Package response owns the mapping from domain outcomes to transport status.
// Lists go out as bare JSON arrays, singletons as bare objects, and every
// failure as {"error": message}, which is the wire shape the page renderers
// consume.
package response

import (
	"errors"
	"net/http"

	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"github.com/gin-gonic/gin"
)

// OK sends a 200 response with the payload as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created document.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": message})
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

// TooManyRequests sends a 429 error response.
func TooManyRequests(c *gin.Context) {
	c.Header("Retry-After", "1")
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
}

// InternalError sends a 500 error response with a generic message; the
// underlying error stays server-side (logged by the request middleware).
func InternalError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": message})
}

// WriteFailed maps a failed create: validation errors become 400 carrying the
// field messages, anything else a 500 with the generic message.
func WriteFailed(c *gin.Context, genericMessage string, err error) {
	var ve *schema.ValidationError
	if errors.As(err, &ve) {
		BadRequest(c, ve.Error())
		return
	}
	InternalError(c, genericMessage, err)
}
