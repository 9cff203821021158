package blog

import "time"

// CreateBlogDTO is the POST /blogs body. Content carries stored HTML; the
// optional Markdown field is rendered to HTML server-side and wins over
// Content when both are present.
type CreateBlogDTO struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	Markdown        string     `json:"markdown"`
	CoverImage      string     `json:"coverImage"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	PublishedDate   *time.Time `json:"publishedDate"`
	AuthorName      string     `json:"authorName"`
	AuthorImage     string     `json:"authorImage"`
	Featured        bool       `json:"featured"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
}

// ListQuery are the recognized GET /blogs query parameters.
type ListQuery struct {
	Slug     string
	Featured bool
	Limit    int
}
