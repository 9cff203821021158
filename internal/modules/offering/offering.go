// Package offering serves the services collection, the offerings listed on
// the home page. The package is not named service to keep grep-ability
// against the per-module Service types.
package offering

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ahamedusman/portfolio-core/internal/models"
	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.ServiceModel, error) {
	var items []models.ServiceModel
	err := s.db.Order("order_num ASC, created_at ASC").Find(&items).Error
	return items, err
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.list)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch services", err)
		return
	}
	if items == nil {
		items = []models.ServiceModel{}
	}
	response.OK(c, items)
}
