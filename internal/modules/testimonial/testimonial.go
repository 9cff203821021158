package testimonial

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ahamedusman/portfolio-core/internal/models"
	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

type CreateTestimonialDTO struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
	Company  string `json:"company"`
	Order    int    `json:"order"`
	Featured bool   `json:"featured"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.TestimonialModel, error) {
	var items []models.TestimonialModel
	err := s.db.Order("order_num ASC, created_at ASC").Find(&items).Error
	return items, err
}

// Create inserts a testimonial. Validation runs in the model hook, so a
// *schema.ValidationError surfaces here for the handler to map to 400.
func (s *Service) Create(dto *CreateTestimonialDTO) (*models.TestimonialModel, error) {
	t := models.TestimonialModel{
		Name:     dto.Name,
		Role:     dto.Role,
		Text:     dto.Text,
		ImageURL: dto.ImageURL,
		Company:  dto.Company,
		Order:    dto.Order,
		Featured: dto.Featured,
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	rg.GET("/testimonials", h.list)
	rg.POST("/testimonials", adminMW, h.create)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch testimonials", err)
		return
	}
	if items == nil {
		items = []models.TestimonialModel{}
	}
	response.OK(c, items)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateTestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	t, err := h.svc.Create(&dto)
	if err != nil {
		response.WriteFailed(c, "Failed to create testimonial", err)
		return
	}
	response.Created(c, t)
}
