// Package contact relays contact-form submissions by email. Submissions are
// not persisted; a failed relay is the visitor's problem to retry.
package contact

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/ahamedusman/portfolio-core/internal/pkg/mail"
	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Service struct {
	sender mail.Sender
	to     string
}

func NewService(sender mail.Sender, to string) *Service {
	return &Service{sender: sender, to: to}
}

// Relay renders the notification email and hands it to the sender.
func (s *Service) Relay(dto *ContactDTO) error {
	html, err := mail.RenderContactNotify(mail.ContactData{
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Body:    dto.Message,
	})
	if err != nil {
		return fmt.Errorf("render contact mail: %w", err)
	}
	msg := mail.Message{
		To:      []string{s.to},
		ReplyTo: dto.Email,
		Subject: "Contact form: " + dto.Subject,
		HTML:    html,
	}
	if err := s.sender.Send(msg); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var dto ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.Name == "" || dto.Email == "" || dto.Subject == "" || dto.Message == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}
	if !emailPattern.MatchString(dto.Email) {
		response.BadRequest(c, "Invalid email format")
		return
	}
	if err := h.svc.Relay(&dto); err != nil {
		response.InternalError(c, "Failed to process your request", err)
		return
	}
	response.OK(c, gin.H{"message": "Message sent successfully! We will get back to you soon."})
}
