package models

import (
	"fmt"

	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"gorm.io/gorm"
)

// SocialLink is one social media entry of the footer.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// FooterLink is one quick link of the footer.
type FooterLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// FooterModel holds the site footer content. Singleton-by-convention.
type FooterModel struct {
	Base
	Copyright   string       `json:"copyright"   gorm:"not null"`
	SocialLinks []SocialLink `json:"socialLinks" gorm:"type:longtext;serializer:json"`
	Links       []FooterLink `json:"links"       gorm:"type:longtext;serializer:json"`
	Credits     string       `json:"credits"`
}

func (FooterModel) TableName() string { return "footers" }

func (m *FooterModel) Validate() error {
	v := schema.NewValidator()
	v.Require("copyright", m.Copyright, "Please provide copyright text")
	for i, link := range m.SocialLinks {
		v.Require(fmt.Sprintf("socialLinks.%d.platform", i), link.Platform, "Please provide a social platform name")
		v.Require(fmt.Sprintf("socialLinks.%d.url", i), link.URL, "Please provide a social link URL")
		v.Require(fmt.Sprintf("socialLinks.%d.icon", i), link.Icon, "Please provide an icon name")
	}
	for i, link := range m.Links {
		v.Require(fmt.Sprintf("links.%d.label", i), link.Label, "Please provide a link label")
		v.Require(fmt.Sprintf("links.%d.href", i), link.Href, "Please provide a link URL")
	}
	return v.Err()
}

func (m *FooterModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	return m.Validate()
}
