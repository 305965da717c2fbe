package content

import (
	"strings"

	"stock-admin/internal/domain/entity"
)

// Form holds the create-article-name input as typed by the user.
type Form struct {
	Name        string
	DefaultUnit string
	Description string
}

// DefaultForm returns the empty form with the first unit preselected.
func DefaultForm() Form {
	return Form{DefaultUnit: string(entity.DefaultUnit)}
}

// toArticleName validates the form and builds the record to persist.
// An empty unit falls back to the default one.
func (f Form) toArticleName(actor entity.Actor) (*entity.ArticleName, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	unit, err := entity.ParseUnit(strings.TrimSpace(f.DefaultUnit))
	if err != nil {
		return nil, &entity.ValidationError{Field: "default_unit", Message: "must be one of the known units"}
	}
	return &entity.ArticleName{
		Name:          name,
		DefaultUnit:   unit,
		Description:   entity.OptionalText(f.Description),
		IsActive:      true,
		CreatedBy:     actor.ID,
		CreatedByName: actor.DisplayName(),
	}, nil
}
