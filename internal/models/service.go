package models

import (
	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"gorm.io/gorm"
)

// ServiceModel is one offered service shown on the home page.
type ServiceModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"       gorm:"column:order_num;default:0;index"`
}

func (ServiceModel) TableName() string { return "services" }

func (m *ServiceModel) Validate() error {
	v := schema.NewValidator()
	v.Require("title", m.Title, "Please provide a service title")
	v.MaxLen("title", m.Title, 100, "Service title cannot be more than 100 characters")
	v.Require("description", m.Description, "Please provide a description")
	v.MaxLen("description", m.Description, 500, "Description cannot be more than 500 characters")
	v.Require("icon", m.Icon, "Please provide an icon")
	return v.Err()
}

func (m *ServiceModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	return m.Validate()
}
