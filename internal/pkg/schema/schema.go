// Package schema implements field-level document validation shared by all
// content models. Rules (required, max length, enum membership) mirror the
// constraints declared on each collection.
package schema

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError is a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violated field of a candidate document.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, ", ")
}

// Validator accumulates constraint checks for one document.
type Validator struct {
	fields []FieldError
}

func NewValidator() *Validator { return &Validator{} }

func (v *Validator) add(field, message string) {
	v.fields = append(v.fields, FieldError{Field: field, Message: message})
}

// Require fails when value is empty after trimming.
func (v *Validator) Require(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, message)
	}
}

// RequireSlice fails when the slice has no elements.
func (v *Validator) RequireSlice(field string, length int, message string) {
	if length == 0 {
		v.add(field, message)
	}
}

// MaxLen fails when value exceeds max characters. Empty values pass; pair
// with Require when the field is also mandatory.
func (v *Validator) MaxLen(field, value string, max int, message string) {
	if utf8.RuneCountInString(value) > max {
		v.add(field, message)
	}
}

// Enum fails when value is not one of allowed. Empty values pass so that a
// default can be applied instead.
func (v *Validator) Enum(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.add(field, fmt.Sprintf("%s is not a valid %s", value, field))
}

// Err returns the accumulated ValidationError, or nil when every check passed.
func (v *Validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
