package project

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ahamedusman/portfolio-core/internal/models"
	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.ProjectModel, error) {
	var items []models.ProjectModel
	if err := s.db.Order("order_num ASC, created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	// Rows imported from older dumps may carry null embedded arrays.
	for i := range items {
		if items[i].Technologies == nil {
			items[i].Technologies = models.StringSlice{}
		}
		if items[i].Images == nil {
			items[i].Images = models.StringSlice{}
		}
		if items[i].Videos == nil {
			items[i].Videos = []models.Video{}
		}
	}
	return items, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch projects", err)
		return
	}
	if items == nil {
		items = []models.ProjectModel{}
	}
	response.OK(c, items)
}
