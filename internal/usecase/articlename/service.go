package articlename

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/observability/metrics"
	"stock-admin/internal/repository"
)

// UpdateInput represents a partial update. Nil fields are left unchanged;
// an empty Description clears it.
type UpdateInput struct {
	ID          int64
	Name        *string
	DefaultUnit *string
	Description *string
	IsActive    *bool
}

// Service provides article name management use cases.
type Service struct {
	Repo repository.ArticleNameRepository
}

// List retrieves all article names ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.ArticleName, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list article names: %w", err)
	}
	return items, nil
}

// Get returns one article name or ErrArticleNameNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*entity.ArticleName, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article name: %w", err)
	}
	if a == nil {
		return nil, ErrArticleNameNotFound
	}
	return a, nil
}

// Update applies in to an existing article name.
// Returns ErrArticleNameNotFound if the record does not exist and a
// ValidationError if a changed field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.ArticleName, error) {
	a, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.DefaultUnit != nil {
		// 更新時の空文字は既定単位へのリセットではなくエラー
		raw := strings.TrimSpace(*in.DefaultUnit)
		if raw == "" {
			return nil, &entity.ValidationError{Field: "default_unit", Message: "is required"}
		}
		unit, err := entity.ParseUnit(raw)
		if err != nil {
			return nil, &entity.ValidationError{Field: "default_unit", Message: "must be one of the known units"}
		}
		a.DefaultUnit = unit
	}
	if in.Description != nil {
		a.Description = entity.OptionalText(*in.Description)
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, a); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNameNotFound
		}
		return nil, fmt.Errorf("update article name: %w", err)
	}
	metrics.RecordMutation("article_name", "update")
	return a, nil
}

// Delete removes an article name by its ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNameNotFound
		}
		return fmt.Errorf("delete article name: %w", err)
	}
	metrics.RecordMutation("article_name", "delete")
	return nil
}
