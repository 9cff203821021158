package blog

import (
	"errors"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/ahamedusman/portfolio-core/internal/models"
	"github.com/ahamedusman/portfolio-core/internal/pkg/markdown"
)

// ErrSlugExists reports a duplicate slug on create.
var ErrSlugExists = errors.New("slug already exists")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns posts newest-first by publishedDate. Slug, featured and limit
// all narrow the same query, so a slug lookup composes with the other filters.
func (s *Service) List(q ListQuery) ([]models.BlogModel, error) {
	tx := s.db.Order("published_date DESC")
	if q.Slug != "" {
		tx = tx.Where("slug = ?", q.Slug)
	}
	if q.Featured {
		tx = tx.Where("featured = ?", true)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	var items []models.BlogModel
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Tags == nil {
			items[i].Tags = models.StringSlice{}
		}
	}
	return items, nil
}

func (s *Service) Create(dto *CreateBlogDTO) (*models.BlogModel, error) {
	var count int64
	if err := s.db.Model(&models.BlogModel{}).Where("slug = ?", dto.Slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	content := dto.Content
	if dto.Markdown != "" {
		content = markdown.Render(dto.Markdown)
	}

	post := models.BlogModel{
		Title:           dto.Title,
		Slug:            dto.Slug,
		Excerpt:         dto.Excerpt,
		Content:         content,
		CoverImage:      dto.CoverImage,
		Category:        dto.Category,
		Tags:            dto.Tags,
		Author:          models.Author{Name: dto.AuthorName, Image: dto.AuthorImage},
		Featured:        dto.Featured,
		MetaTitle:       dto.MetaTitle,
		MetaDescription: dto.MetaDescription,
	}
	if dto.PublishedDate != nil {
		post.PublishedDate = *dto.PublishedDate
	}
	if err := s.db.Create(&post).Error; err != nil {
		// The pre-check races with concurrent creates; the unique index is
		// the real guarantee.
		if isDuplicateConstraintError(err) {
			return nil, ErrSlugExists
		}
		return nil, err
	}
	return &post, nil
}

func isDuplicateConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}
