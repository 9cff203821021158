package experience

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ahamedusman/portfolio-core/internal/models"
	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.ExperienceModel, error) {
	var items []models.ExperienceModel
	err := s.db.Order("order_num ASC, created_at ASC").Find(&items).Error
	return items, err
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/experiences", h.list)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch experiences", err)
		return
	}
	if items == nil {
		items = []models.ExperienceModel{}
	}
	response.OK(c, items)
}
