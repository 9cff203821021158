package models

import (
	"time"

	"github.com/ahamedusman/portfolio-core/internal/pkg/schema"
	"gorm.io/gorm"
)

// DefaultAuthorName is filled in when a blog post is created without an author.
const DefaultAuthorName = "Ahamed Usman"

// Author is the embedded post author.
type Author struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// BlogModel is a blog post. Slug is the external-facing identifier and is
// unique across the collection.
type BlogModel struct {
	Base
	Title           string      `json:"title"           gorm:"not null"`
	Slug            string      `json:"slug"            gorm:"uniqueIndex;not null"`
	Excerpt         string      `json:"excerpt"`
	Content         string      `json:"content"         gorm:"type:longtext"`
	CoverImage      string      `json:"coverImage"      gorm:"column:cover_image"`
	Category        string      `json:"category"        gorm:"not null;index"`
	Tags            StringSlice `json:"tags"            gorm:"type:longtext;serializer:json"`
	PublishedDate   time.Time   `json:"publishedDate"   gorm:"index"`
	Author          Author      `json:"author"          gorm:"type:longtext;serializer:json"`
	Featured        bool        `json:"featured"        gorm:"default:false;index"`
	MetaTitle       string      `json:"metaTitle"       gorm:"column:meta_title"`
	MetaDescription string      `json:"metaDescription" gorm:"column:meta_description"`
}

func (BlogModel) TableName() string { return "blogs" }

func (m *BlogModel) Validate() error {
	v := schema.NewValidator()
	v.Require("title", m.Title, "Please provide a title for this blog post")
	v.MaxLen("title", m.Title, 200, "Title cannot be more than 200 characters")
	v.Require("slug", m.Slug, "Please provide a slug for this blog post")
	v.Require("excerpt", m.Excerpt, "Please provide an excerpt")
	v.MaxLen("excerpt", m.Excerpt, 500, "Excerpt cannot be more than 500 characters")
	v.Require("content", m.Content, "Please provide content for this blog post")
	v.Require("category", m.Category, "Please provide a category")
	return v.Err()
}

func (m *BlogModel) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if m.PublishedDate.IsZero() {
		m.PublishedDate = time.Now()
	}
	if m.Author.Name == "" {
		m.Author.Name = DefaultAuthorName
	}
	if m.Tags == nil {
		m.Tags = StringSlice{}
	}
	return m.Validate()
}
