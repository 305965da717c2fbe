// Package repository declares the persistence ports used by the use cases.
package repository

import (
	"context"

	"stock-admin/internal/domain/entity"
)

// ArticleNameRepository persists article names.
// Create and CreateBatch fill in the store-assigned ID, CreatedAt and UpdatedAt.
type ArticleNameRepository interface {
	Get(ctx context.Context, id int64) (*entity.ArticleName, error)
	List(ctx context.Context) ([]*entity.ArticleName, error)
	Create(ctx context.Context, a *entity.ArticleName) error
	CreateBatch(ctx context.Context, items []*entity.ArticleName) error
	Update(ctx context.Context, a *entity.ArticleName) error
	Delete(ctx context.Context, id int64) error
}
