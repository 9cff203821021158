// Package site serves the singleton collections rendered on every page:
// profile, header and footer. Each collection holds one row by convention;
// when more exist the oldest wins, matching seed order.
package site

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ahamedusman/portfolio-core/internal/models"
	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func firstOrNil[T any](db *gorm.DB) (*T, error) {
	var row T
	if err := db.Order("created_at ASC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *Service) Profile() (*models.ProfileModel, error) {
	return firstOrNil[models.ProfileModel](s.db)
}

func (s *Service) Header() (*models.HeaderModel, error) {
	h, err := firstOrNil[models.HeaderModel](s.db)
	if h != nil && h.Navigation == nil {
		h.Navigation = []models.NavItem{}
	}
	return h, err
}

func (s *Service) Footer() (*models.FooterModel, error) {
	f, err := firstOrNil[models.FooterModel](s.db)
	if f != nil {
		if f.SocialLinks == nil {
			f.SocialLinks = []models.SocialLink{}
		}
		if f.Links == nil {
			f.Links = []models.FooterLink{}
		}
	}
	return f, err
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.profile)
	rg.GET("/header", h.header)
	rg.GET("/footer", h.footer)
}

func (h *Handler) profile(c *gin.Context) {
	p, err := h.svc.Profile()
	if err != nil {
		response.InternalError(c, "Failed to fetch profile", err)
		return
	}
	if p == nil {
		response.NotFound(c, "Profile not found")
		return
	}
	response.OK(c, p)
}

func (h *Handler) header(c *gin.Context) {
	hd, err := h.svc.Header()
	if err != nil {
		response.InternalError(c, "Failed to fetch header", err)
		return
	}
	if hd == nil {
		response.NotFound(c, "Header not found")
		return
	}
	response.OK(c, hd)
}

func (h *Handler) footer(c *gin.Context) {
	f, err := h.svc.Footer()
	if err != nil {
		response.InternalError(c, "Failed to fetch footer", err)
		return
	}
	if f == nil {
		response.NotFound(c, "Footer not found")
		return
	}
	response.OK(c, f)
}
