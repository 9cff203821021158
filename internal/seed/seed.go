// Package seed bulk-replaces the content collections from archive dumps and
// exports them back out. Collections are overwritten wholesale; the HTTP
// layer never deletes, so this is the only destructive path.
package seed

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ahamedusman/portfolio-core/internal/models"
)

// CollectionNames lists every archive entry the importer recognizes, in
// import order.
var CollectionNames = []string{
	"profiles", "headers", "footers", "skills", "experiences",
	"services", "projects", "testimonials", "blogs",
}

// Mongo-era dumps carry these field names; the aliases map them onto the
// API document shape before decoding.
var fieldAliases = map[string]string{
	"_id":       "id",
	"createdat": "created",
	"updatedat": "modified",
}

type entryCandidate struct {
	file   *zip.File
	format string
}

// Import replaces every collection present in the archive inside one
// transaction. Each row passes through the model create hooks, so invalid
// dump rows abort the whole import. When fillDefaults is set, collections
// with no archive entry and no existing rows are seeded from the default
// content set.
func Import(db *gorm.DB, zr *zip.Reader, fillDefaults bool) error {
	if db == nil || zr == nil {
		return fmt.Errorf("invalid import input")
	}

	entries := make(map[string]entryCandidate)
	for _, file := range zr.File {
		name, format, ok := parseEntry(file.Name)
		if !ok {
			continue
		}
		exist, has := entries[name]
		if !has || (exist.format != "bson" && format == "bson") {
			entries[name] = entryCandidate{file: file, format: format}
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range CollectionNames {
			entry, ok := entries[name]
			if !ok {
				if fillDefaults {
					if err := seedCollectionDefaultIfEmpty(tx, name); err != nil {
						return err
					}
				}
				continue
			}
			rows, err := decodeEntryRows(entry.file, entry.format)
			if err != nil {
				return fmt.Errorf("decode %s dump: %w", name, err)
			}
			if err := replaceCollection(tx, name, rows); err != nil {
				return fmt.Errorf("import %s: %w", name, err)
			}
		}
		return nil
	})
}

// Export writes every collection to a ZIP, one entry per collection.
// Format is "json" or "bson".
func Export(db *gorm.DB, format string) (*bytes.Buffer, error) {
	if format != "json" && format != "bson" {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for _, name := range CollectionNames {
		rows, err := collectionRows(db, name)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", name, err)
		}
		var payload []byte
		switch format {
		case "json":
			payload, err = json.MarshalIndent(rows, "", "  ")
		case "bson":
			payload, err = encodeBSONRows(rows)
		}
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		f, err := w.Create(name + "." + format)
		if err != nil {
			return nil, err
		}
		if _, err := f.Write(payload); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

// ArchiveFilename names an export artifact.
func ArchiveFilename(now time.Time) string {
	return fmt.Sprintf("portfolio-seed-%s.zip", now.Format("2006-01-02T15-04-05"))
}

func parseEntry(name string) (collection, format string, ok bool) {
	base := strings.ToLower(strings.TrimSpace(path.Base(name)))
	if base == "" || strings.HasSuffix(base, ".metadata.json") {
		return "", "", false
	}
	for _, ext := range []string{".json", ".bson"} {
		if strings.HasSuffix(base, ext) {
			collection = strings.TrimSuffix(base, ext)
			if !isKnownCollection(collection) {
				return "", "", false
			}
			return collection, ext[1:], true
		}
	}
	return "", "", false
}

func isKnownCollection(name string) bool {
	for _, n := range CollectionNames {
		if n == name {
			return true
		}
	}
	return false
}

func decodeEntryRows(file *zip.File, format string) ([]map[string]interface{}, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	switch format {
	case "bson":
		return decodeBSONRows(data)
	case "json":
		if len(bytes.TrimSpace(data)) == 0 {
			return []map[string]interface{}{}, nil
		}
		var rows []map[string]interface{}
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported dump format: %s", format)
	}
}

// normalizeDocument maps dump field names onto API document keys and drops
// Mongoose bookkeeping fields.
func normalizeDocument(row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(row))
	for key, value := range row {
		lower := strings.ToLower(strings.TrimSpace(key))
		if lower == "" || lower == "__v" {
			continue
		}
		if mapped, ok := fieldAliases[lower]; ok {
			key = mapped
		}
		out[key] = normalizeBSONValue(value)
	}
	return out
}

func replaceCollection(tx *gorm.DB, name string, rows []map[string]interface{}) error {
	switch name {
	case "profiles":
		return replaceRows[models.ProfileModel](tx, rows)
	case "headers":
		return replaceRows[models.HeaderModel](tx, rows)
	case "footers":
		return replaceRows[models.FooterModel](tx, rows)
	case "skills":
		return replaceRows[models.SkillModel](tx, rows)
	case "experiences":
		return replaceRows[models.ExperienceModel](tx, rows)
	case "services":
		return replaceRows[models.ServiceModel](tx, rows)
	case "projects":
		return replaceRows[models.ProjectModel](tx, rows)
	case "testimonials":
		return replaceRows[models.TestimonialModel](tx, rows)
	case "blogs":
		return replaceRows[models.BlogModel](tx, rows)
	default:
		return fmt.Errorf("unknown collection: %s", name)
	}
}

func replaceRows[T any](tx *gorm.DB, rows []map[string]interface{}) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T)).Error; err != nil {
		return err
	}
	for idx, row := range rows {
		raw, err := json.Marshal(normalizeDocument(row))
		if err != nil {
			return fmt.Errorf("row #%d: %w", idx+1, err)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return fmt.Errorf("row #%d: %w", idx+1, err)
		}
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("row #%d: %w", idx+1, err)
		}
	}
	return nil
}

func collectionRows(db *gorm.DB, name string) ([]map[string]interface{}, error) {
	var (
		raw []byte
		err error
	)
	switch name {
	case "profiles":
		raw, err = marshalCollection[models.ProfileModel](db)
	case "headers":
		raw, err = marshalCollection[models.HeaderModel](db)
	case "footers":
		raw, err = marshalCollection[models.FooterModel](db)
	case "skills":
		raw, err = marshalCollection[models.SkillModel](db)
	case "experiences":
		raw, err = marshalCollection[models.ExperienceModel](db)
	case "services":
		raw, err = marshalCollection[models.ServiceModel](db)
	case "projects":
		raw, err = marshalCollection[models.ProjectModel](db)
	case "testimonials":
		raw, err = marshalCollection[models.TestimonialModel](db)
	case "blogs":
		raw, err = marshalCollection[models.BlogModel](db)
	default:
		return nil, fmt.Errorf("unknown collection: %s", name)
	}
	if err != nil {
		return nil, err
	}
	rows := []map[string]interface{}{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// marshalCollection round-trips typed rows through their JSON tags so dumps
// carry API field names and re-import cleanly.
func marshalCollection[T any](db *gorm.DB) ([]byte, error) {
	var items []T
	if err := db.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return json.Marshal(items)
}
