package blog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahamedusman/portfolio-core/internal/models"
	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	rg.GET("/blogs", h.list)
	rg.POST("/blogs", adminMW, h.create)
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		Slug:     strings.TrimSpace(c.Query("slug")),
		Featured: c.Query("featured") == "true",
	}
	// Non-numeric and non-positive limits are ignored rather than rejected.
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Limit = n
		}
	}
	items, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, "Failed to fetch blog posts", err)
		return
	}
	if q.Slug != "" && len(items) == 0 {
		response.NotFound(c, "Blog post not found")
		return
	}
	if items == nil {
		items = []models.BlogModel{}
	}
	response.OK(c, items)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	post, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrSlugExists) {
			response.BadRequest(c, ErrSlugExists.Error())
			return
		}
		response.WriteFailed(c, "Failed to create blog post", err)
		return
	}
	response.Created(c, post)
}
