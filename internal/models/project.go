package models

import (
	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"gorm.io/gorm"
)

// Video is an embedded project video reference.
type Video struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// ProjectModel is one portfolio project.
type ProjectModel struct {
	Base
	Title        string      `json:"title"        gorm:"not null"`
	Description  string      `json:"description"  gorm:"type:longtext"`
	Technologies StringSlice `json:"technologies" gorm:"type:longtext;serializer:json"`
	Role         string      `json:"role"`
	Challenge    string      `json:"challenge"    gorm:"type:longtext"`
	Outcome      string      `json:"outcome"      gorm:"type:longtext"`
	Duration     string      `json:"duration"`
	Year         string      `json:"year"`
	// ImageURL predates Images and is kept for older seed dumps.
	ImageURL string      `json:"imageUrl" gorm:"column:image_url"`
	Images   StringSlice `json:"images"   gorm:"type:longtext;serializer:json"`
	Videos   []Video     `json:"videos"   gorm:"type:longtext;serializer:json"`
	Order    int         `json:"order"    gorm:"column:order_num;default:0;index"`
}

func (ProjectModel) TableName() string { return "projects" }

func (m *ProjectModel) Validate() error {
	v := schema.NewValidator()
	v.Require("title", m.Title, "Please provide a title for this project")
	v.MaxLen("title", m.Title, 100, "Title cannot be more than 100 characters")
	v.Require("description", m.Description, "Please provide a description")
	v.RequireSlice("technologies", len(m.Technologies), "Please provide at least one technology")
	return v.Err()
}

func (m *ProjectModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if m.Images == nil {
		m.Images = StringSlice{}
	}
	if m.Videos == nil {
		m.Videos = []Video{}
	}
	return m.Validate()
}
