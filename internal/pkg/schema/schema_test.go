package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatorPasses(t *testing.T) {
	v := NewValidator()
	v.Require("name", "Jane", "Please provide a name")
	v.MaxLen("name", "Jane", 50, "Name cannot be more than 50 characters")
	v.Enum("category", "backend", []string{"frontend", "backend", "other"})
	if err := v.Err(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidatorCollectsEveryViolation(t *testing.T) {
	v := NewValidator()
	v.Require("name", "   ", "Please provide a name")
	v.MaxLen("title", strings.Repeat("x", 101), 100, "Title cannot be more than 100 characters")
	v.Enum("category", "hardware", []string{"frontend", "backend", "other"})
	v.RequireSlice("technologies", 0, "Please provide at least one technology")

	err := v.Err()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(ve.Fields), ve.Fields)
	}
	if ve.Fields[0].Field != "name" || ve.Fields[0].Message != "Please provide a name" {
		t.Fatalf("unexpected first violation: %+v", ve.Fields[0])
	}
	if !strings.Contains(ve.Error(), "Title cannot be more than 100 characters") {
		t.Fatalf("joined message missing max-length violation: %s", ve.Error())
	}
}

func TestEnumSkipsEmptyForDefaulting(t *testing.T) {
	v := NewValidator()
	v.Enum("category", "", []string{"frontend", "backend"})
	if err := v.Err(); err != nil {
		t.Fatalf("empty enum value must pass (a default is applied later), got %v", err)
	}
}

func TestMaxLenCountsRunes(t *testing.T) {
	v := NewValidator()
	v.MaxLen("name", strings.Repeat("界", 50), 50, "too long")
	if err := v.Err(); err != nil {
		t.Fatalf("50 runes within a 50 limit must pass, got %v", err)
	}
}
