package models

import (
	"fmt"

	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"gorm.io/gorm"
)

// NavItem is one entry of the header navigation.
type NavItem struct {
	Label      string `json:"label"`
	Href       string `json:"href"`
	IsExternal bool   `json:"isExternal"`
}

// CTAButton is the header call-to-action.
type CTAButton struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// HeaderModel holds the site header content. Singleton-by-convention.
type HeaderModel struct {
	Base
	Logo       string    `json:"logo"       gorm:"not null"`
	Navigation []NavItem `json:"navigation" gorm:"type:longtext;serializer:json"`
	CTAButton  CTAButton `json:"ctaButton"  gorm:"column:cta_button;type:longtext;serializer:json"`
}

func (HeaderModel) TableName() string { return "headers" }

func (m *HeaderModel) Validate() error {
	v := schema.NewValidator()
	v.Require("logo", m.Logo, "Please provide a logo text or image URL")
	for i, item := range m.Navigation {
		v.Require(fmt.Sprintf("navigation.%d.label", i), item.Label, "Please provide a navigation label")
		v.Require(fmt.Sprintf("navigation.%d.href", i), item.Href, "Please provide a navigation URL")
	}
	return v.Err()
}

func (m *HeaderModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	return m.Validate()
}
