package models

import (
	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"gorm.io/gorm"
)

// SkillCategories are the allowed values of SkillModel.Category.
var SkillCategories = []string{"frontend", "backend", "database", "devops", "other"}

// SkillModel is one skill shown on the about page.
type SkillModel struct {
	Base
	Name     string `json:"name"     gorm:"not null"`
	Category string `json:"category" gorm:"default:'other';index"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"    gorm:"column:order_num;default:0;index"`
}

func (SkillModel) TableName() string { return "skills" }

func (m *SkillModel) Validate() error {
	v := schema.NewValidator()
	v.Require("name", m.Name, "Please provide a skill name")
	v.MaxLen("name", m.Name, 50, "Skill name cannot be more than 50 characters")
	v.Enum("category", m.Category, SkillCategories)
	return v.Err()
}

func (m *SkillModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if m.Category == "" {
		m.Category = "other"
	}
	return m.Validate()
}
