package seed

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
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

func buildArchive(t *testing.T, entries map[string][]byte) *zip.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for name, data := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip open: %v", err)
	}
	return zr
}

func TestImportJSONReplacesCollection(t *testing.T) {
	db := newTestDB(t)

	stale := models.SkillModel{Name: "COBOL", Category: "other"}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("create stale: %v", err)
	}

	dump := []byte(`[
		{"name":"JavaScript","category":"frontend","icon":"javascript.svg","order":1},
		{"name":"Go","category":"backend","icon":"go.svg","order":2}
	]`)
	if err := Import(db, buildArchive(t, map[string][]byte{"skills.json": dump}), false); err != nil {
		t.Fatalf("import: %v", err)
	}

	var skills []models.SkillModel
	if err := db.Order("order_num ASC").Find(&skills).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("skill count = %d, want 2 (stale rows must be replaced)", len(skills))
	}
	if skills[0].Name != "JavaScript" || skills[1].Name != "Go" {
		t.Fatalf("unexpected skills: %+v", skills)
	}
	if skills[0].ID == "" {
		t.Fatal("imported row missing generated id")
	}
}

func TestImportBSONDump(t *testing.T) {
	db := newTestDB(t)

	published := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	doc1, err := bson.Marshal(bson.M{
		"_id":           primitive.NewObjectID(),
		"title":         "From Mongo",
		"slug":          "from-mongo",
		"excerpt":       "Dumped straight out of mongodump.",
		"content":       "<p>hello</p>",
		"category":      "Technology",
		"tags":          bson.A{"mongo", "migration"},
		"publishedDate": primitive.NewDateTimeFromTime(published),
		"author":        bson.M{"name": "Ahamed Usman"},
		"featured":      true,
		"__v":           0,
	})
	if err != nil {
		t.Fatalf("bson marshal: %v", err)
	}
	doc2, err := bson.Marshal(bson.M{
		"title":    "Second Post",
		"slug":     "second-post",
		"excerpt":  "E",
		"content":  "C",
		"category": "Technology",
	})
	if err != nil {
		t.Fatalf("bson marshal: %v", err)
	}

	archive := buildArchive(t, map[string][]byte{"blogs.bson": append(doc1, doc2...)})
	if err := Import(db, archive, false); err != nil {
		t.Fatalf("import: %v", err)
	}

	var post models.BlogModel
	if err := db.First(&post, "slug = ?", "from-mongo").Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if !post.Featured || len(post.Tags) != 2 {
		t.Fatalf("bson fields lost: %+v", post)
	}
	if !post.PublishedDate.Equal(published) {
		t.Fatalf("publishedDate = %v, want %v", post.PublishedDate, published)
	}
	if post.Author.Name != "Ahamed Usman" {
		t.Fatalf("author = %+v", post.Author)
	}
	var count int64
	db.Model(&models.BlogModel{}).Count(&count)
	if count != 2 {
		t.Fatalf("post count = %d, want 2", count)
	}
}

func TestImportInvalidRowAborts(t *testing.T) {
	db := newTestDB(t)

	keep := models.ServiceModel{Title: "Keep Me", Description: "d", Icon: "x"}
	if err := db.Create(&keep).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	dump := []byte(`[{"description":"missing title","icon":"x"}]`)
	err := Import(db, buildArchive(t, map[string][]byte{"services.json": dump}), false)
	if err == nil {
		t.Fatal("import of invalid rows must fail")
	}

	var count int64
	db.Model(&models.ServiceModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("failed import must roll back, count = %d", count)
	}
}

func TestImportFillsDefaultsForMissingCollections(t *testing.T) {
	db := newTestDB(t)

	dump := []byte(`[{"name":"Go","category":"backend"}]`)
	if err := Import(db, buildArchive(t, map[string][]byte{"skills.json": dump}), true); err != nil {
		t.Fatalf("import: %v", err)
	}

	var skills int64
	db.Model(&models.SkillModel{}).Count(&skills)
	if skills != 1 {
		t.Fatalf("archive collection must win, skill count = %d", skills)
	}
	var profiles int64
	db.Model(&models.ProfileModel{}).Count(&profiles)
	if profiles != 1 {
		t.Fatalf("missing collection must be seeded from defaults, profile count = %d", profiles)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	db := newTestDB(t)
	if err := ApplyDefaults(db); err != nil {
		t.Fatalf("apply defaults: %v", err)
	}

	for _, format := range []string{"json", "bson"} {
		buf, err := Export(db, format)
		if err != nil {
			t.Fatalf("export %s: %v", format, err)
		}
		zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		if err != nil {
			t.Fatalf("open %s archive: %v", format, err)
		}
		if len(zr.File) != len(CollectionNames) {
			t.Fatalf("%s archive has %d entries, want %d", format, len(zr.File), len(CollectionNames))
		}

		other := newTestDBNamed(t, t.Name()+format)
		if err := Import(other, zr, false); err != nil {
			t.Fatalf("reimport %s: %v", format, err)
		}
		var skills []models.SkillModel
		if err := other.Order("order_num ASC").Find(&skills).Error; err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(skills) != len(Defaults().Skills) {
			t.Fatalf("%s round trip lost skills: %d", format, len(skills))
		}
		if skills[0].Name != "JavaScript" {
			t.Fatalf("%s round trip reordered skills: %s", format, skills[0].Name)
		}
	}
}

func newTestDBNamed(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestResolvePrefersFetchedContent(t *testing.T) {
	defaults := Defaults()
	fetched := Content{
		Profile: &models.ProfileModel{Name: "Custom"},
		Skills:  []models.SkillModel{{Name: "Zig", Category: "backend"}},
	}

	resolved := Resolve(fetched, defaults)
	if resolved.Profile.Name != "Custom" {
		t.Fatalf("profile = %s, want fetched", resolved.Profile.Name)
	}
	if len(resolved.Skills) != 1 || resolved.Skills[0].Name != "Zig" {
		t.Fatalf("skills = %+v, want fetched", resolved.Skills)
	}
	if resolved.Header.Logo != defaults.Header.Logo {
		t.Fatal("missing header must fall back to default")
	}
	if len(resolved.Services) != len(defaults.Services) {
		t.Fatal("empty services must fall back to default")
	}
}

func TestParseEntryRecognizesDumpNames(t *testing.T) {
	cases := []struct {
		name       string
		collection string
		format     string
		ok         bool
	}{
		{"skills.json", "skills", "json", true},
		{"dump/blogs.bson", "blogs", "bson", true},
		{"Blogs.JSON", "blogs", "json", true},
		{"blogs.metadata.json", "", "", false},
		{"readme.txt", "", "", false},
		{"unknown.json", "", "", false},
	}
	for _, tc := range cases {
		collection, format, ok := parseEntry(tc.name)
		if ok != tc.ok || collection != tc.collection || format != tc.format {
			t.Fatalf("parseEntry(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.name, collection, format, ok, tc.collection, tc.format, tc.ok)
		}
	}
}
