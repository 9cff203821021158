package blog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahamedusman/portfolio-core/internal/database"
	"github.com/ahamedusman/portfolio-core/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(db)).RegisterRoutes(r.Group(""), func(c *gin.Context) { c.Next() })
	return r
}

func mustCreatePost(t *testing.T, db *gorm.DB, slug string, published time.Time, featured bool) {
	t.Helper()
	post := models.BlogModel{
		Title:         "Post " + slug,
		Slug:          slug,
		Excerpt:       "Excerpt for " + slug,
		Content:       "<p>content</p>",
		Category:      "Technology",
		PublishedDate: published,
		Featured:      featured,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post %s: %v", slug, err)
	}
}

func TestListSortsByPublishedDateDesc(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mustCreatePost(t, db, "oldest", base, false)
	mustCreatePost(t, db, "newest", base.AddDate(0, 2, 0), false)
	mustCreatePost(t, db, "middle", base.AddDate(0, 1, 0), false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got []models.BlogModel
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	slugs := make([]string, len(got))
	for i, p := range got {
		slugs[i] = p.Slug
	}
	want := []string{"newest", "middle", "oldest"}
	for i := range want {
		if slugs[i] != want[i] {
			t.Fatalf("order = %v, want %v", slugs, want)
		}
	}
}

func TestListFeaturedFilterAndLimit(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		mustCreatePost(t, db, fmt.Sprintf("post-%d", i), base.AddDate(0, 0, i), i%2 == 0)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs?featured=true", nil))
	var featured []models.BlogModel
	if err := json.Unmarshal(w.Body.Bytes(), &featured); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(featured) != 3 {
		t.Fatalf("featured count = %d, want 3", len(featured))
	}
	for _, p := range featured {
		if !p.Featured {
			t.Fatalf("non-featured post %s in filtered list", p.Slug)
		}
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs?limit=2", nil))
	var limited []models.BlogModel
	if err := json.Unmarshal(w.Body.Bytes(), &limited); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limited count = %d, want 2", len(limited))
	}
	if limited[0].Slug != "post-4" {
		t.Fatalf("limit should keep newest-first order, got %s", limited[0].Slug)
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	mustCreatePost(t, db, "exists", time.Now(), false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs?slug=missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"error":"Blog post not found"}` {
		t.Fatalf("body = %s", body)
	}
}

func TestGetBySlugReturnsSingleElementArray(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	mustCreatePost(t, db, "hello-world", time.Now(), false)
	mustCreatePost(t, db, "other", time.Now(), false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs?slug=hello-world", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); !strings.HasPrefix(body, "[") {
		t.Fatalf("slug match must be an array, body starts with %q", body[:1])
	}
	var got []models.BlogModel
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "hello-world" {
		t.Fatalf("got %d posts, want the one matching post", len(got))
	}
}

func TestSlugComposesWithFeatured(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	mustCreatePost(t, db, "plain", time.Now(), false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs?slug=plain&featured=true", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 when filters exclude the slug", w.Code)
	}
}

func TestListIgnoresBadLimit(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mustCreatePost(t, db, "a", base, false)
	mustCreatePost(t, db, "b", base.AddDate(0, 0, 1), false)

	for _, raw := range []string{"abc", "-1", "0"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs?limit="+raw, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("limit=%s: status = %d, want 200", raw, w.Code)
		}
		var got []models.BlogModel
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("limit=%s: unmarshal: %v", raw, err)
		}
		if len(got) != 2 {
			t.Fatalf("limit=%s: got %d posts, want all 2", raw, len(got))
		}
	}
}

func TestCreateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	body := `{
		"title": "Shipping Fast",
		"slug": "shipping-fast",
		"excerpt": "Why small releases win.",
		"content": "<p>Ship it.</p>",
		"category": "Engineering",
		"tags": ["process"]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var created models.BlogModel
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created post has no id")
	}
	if created.Author.Name != models.DefaultAuthorName {
		t.Fatalf("author = %q, want default", created.Author.Name)
	}
	if created.PublishedDate.IsZero() {
		t.Fatal("publishedDate not defaulted")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs?slug=shipping-fast", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("fetch after create: status = %d", w.Code)
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	mustCreatePost(t, db, "taken", time.Now(), false)

	body := `{"title":"T","slug":"taken","excerpt":"E","content":"C","category":"Tech"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "slug already exists") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestCreateValidationFailure(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(`{"slug":"no-title"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please provide a title for this blog post") {
		t.Fatalf("body = %s", w.Body.String())
	}
	var count int64
	db.Model(&models.BlogModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid post was persisted, count = %d", count)
	}
}

func TestCreateRendersMarkdown(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	body := `{
		"title": "Markdown Post",
		"slug": "markdown-post",
		"excerpt": "E",
		"category": "Tech",
		"markdown": "# Heading\n\nSome **bold** text."
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var created models.BlogModel
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(created.Content, "<h1") || !strings.Contains(created.Content, "<strong>bold</strong>") {
		t.Fatalf("content not rendered: %s", created.Content)
	}
}
