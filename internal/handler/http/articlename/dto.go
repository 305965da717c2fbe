package articlename

import (
	"time"

	"stock-admin/internal/domain/entity"
)

type DTO struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	DefaultUnit   string    `json:"default_unit"`
	Description   *string   `json:"description"`
	IsActive      bool      `json:"is_active"`
	CreatedBy     string    `json:"created_by"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToDTO converts an article name to its JSON representation.
func ToDTO(a *entity.ArticleName) DTO {
	return DTO{
		ID:            a.ID,
		Name:          a.Name,
		DefaultUnit:   string(a.DefaultUnit),
		Description:   a.Description,
		IsActive:      a.IsActive,
		CreatedBy:     a.CreatedBy,
		CreatedByName: a.CreatedByName,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
