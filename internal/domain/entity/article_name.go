// Package entity defines the core domain entities and validation logic for the application.
// It contains the reference data managed from the admin console (article names and
// supervisors), the acting user, and the domain-specific errors.
package entity

import (
	"strings"
	"time"
)

// ArticleName is a reference-data record naming a stock item type,
// its default unit of measure and an optional description.
type ArticleName struct {
	ID            int64
	Name          string
	DefaultUnit   Unit
	Description   *string // nil when no description was given
	IsActive      bool
	CreatedBy     string
	CreatedByName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the invariants enforced before persistence:
// a non-empty name and a unit from the closed set.
func (a *ArticleName) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !a.DefaultUnit.Valid() {
		return &ValidationError{Field: "default_unit", Message: "must be one of the known units"}
	}
	return nil
}

// DescriptionText returns the description or an empty string when absent.
func (a *ArticleName) DescriptionText() string {
	if a.Description == nil {
		return ""
	}
	return *a.Description
}

// OptionalText trims s and returns nil when nothing is left.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
