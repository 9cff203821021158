package models

import (
	"time"

	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"gorm.io/gorm"
)

// ExperienceModel is one work-history entry.
type ExperienceModel struct {
	Base
	Role        string     `json:"role"        gorm:"not null"`
	Company     string     `json:"company"     gorm:"not null"`
	Period      string     `json:"period"      gorm:"not null"`
	Description string     `json:"description" gorm:"type:longtext"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Current     bool       `json:"current"     gorm:"default:false"`
	Order       int        `json:"order"       gorm:"column:order_num;default:0;index"`
}

func (ExperienceModel) TableName() string { return "experiences" }

func (m *ExperienceModel) Validate() error {
	v := schema.NewValidator()
	v.Require("role", m.Role, "Please provide a role title")
	v.MaxLen("role", m.Role, 100, "Role title cannot be more than 100 characters")
	v.Require("company", m.Company, "Please provide a company name")
	v.MaxLen("company", m.Company, 100, "Company name cannot be more than 100 characters")
	v.Require("period", m.Period, "Please provide a time period")
	v.MaxLen("period", m.Period, 50, "Period cannot be more than 50 characters")
	v.Require("description", m.Description, "Please provide a description")
	return v.Err()
}

func (m *ExperienceModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	return m.Validate()
}
