package models

import (
	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"gorm.io/gorm"
)

// ProfileModel is the site owner's profile. The collection is
// singleton-by-convention: seeding keeps exactly one row, the store does
// not enforce it.
type ProfileModel struct {
	Base
	Name         string `json:"name"         gorm:"not null"`
	Title        string `json:"title"        gorm:"not null"`
	Tagline      string `json:"tagline"      gorm:"not null"`
	About        string `json:"about"        gorm:"type:longtext"`
	Journey      string `json:"journey"      gorm:"type:longtext"`
	Availability string `json:"availability"`
	ProfileImage string `json:"profileImage"`
	ContactCTA   string `json:"contactCTA"   gorm:"column:contact_cta"`
}

func (ProfileModel) TableName() string { return "profiles" }

func (m *ProfileModel) Validate() error {
	v := schema.NewValidator()
	v.Require("name", m.Name, "Please provide your name")
	v.MaxLen("name", m.Name, 100, "Name cannot be more than 100 characters")
	v.Require("title", m.Title, "Please provide your professional title")
	v.MaxLen("title", m.Title, 100, "Title cannot be more than 100 characters")
	v.Require("tagline", m.Tagline, "Please provide a tagline")
	v.MaxLen("tagline", m.Tagline, 200, "Tagline cannot be more than 200 characters")
	v.Require("about", m.About, "Please provide about information")
	v.Require("journey", m.Journey, "Please provide journey information")
	v.Require("availability", m.Availability, "Please provide availability information")
	v.Require("profileImage", m.ProfileImage, "Please provide a profile image URL")
	v.Require("contactCTA", m.ContactCTA, "Please provide contact CTA text")
	return v.Err()
}

func (m *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	return m.Validate()
}
