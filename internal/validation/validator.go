package validation

import (
	"html"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validator provides common validation predicates over decoded JSON values
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsString checks if a decoded JSON value is a string
func (v *Validator) IsString(value interface{}) bool {
	_, ok := value.(string)
	return ok
}

// IsBool checks if a decoded JSON value is a boolean
func (v *Validator) IsBool(value interface{}) bool {
	_, ok := value.(bool)
	return ok
}

// IsNonEmpty checks that a value is not an empty string. Non-string values
// pass; the type check reports them separately.
func (v *Validator) IsNonEmpty(value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return true
	}
	return strings.TrimSpace(s) != ""
}

// IsObjectIDHex checks if a value is a well-formed document identifier
// (24-character hex string, the store's ObjectID format)
func (v *Validator) IsObjectIDHex(value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// IsDateTime checks if a value is a well-formed RFC 3339 date-time string
func (v *Validator) IsDateTime(value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// Sanitize neutralizes characters that are dangerous to store or render by
// replacing them with HTML entities
func (v *Validator) Sanitize(s string) string {
	return html.EscapeString(s)
}
