package models

import (
	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"gorm.io/gorm"
)

// TestimonialModel is one client testimonial.
type TestimonialModel struct {
	Base
	Name     string `json:"name"     gorm:"not null"`
	Role     string `json:"role"     gorm:"not null"`
	Text     string `json:"text"     gorm:"type:longtext"`
	ImageURL string `json:"imageUrl" gorm:"column:image_url"`
	Company  string `json:"company"`
	Order    int    `json:"order"    gorm:"column:order_num;default:0;index"`
	Featured bool   `json:"featured" gorm:"default:false"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

func (m *TestimonialModel) Validate() error {
	v := schema.NewValidator()
	v.Require("name", m.Name, "Please provide the client name")
	v.MaxLen("name", m.Name, 100, "Name cannot be more than 100 characters")
	v.Require("role", m.Role, "Please provide the client role or company")
	v.MaxLen("role", m.Role, 100, "Role cannot be more than 100 characters")
	v.Require("text", m.Text, "Please provide the testimonial text")
	return v.Err()
}

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	return m.Validate()
}
