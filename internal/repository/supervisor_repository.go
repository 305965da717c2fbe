package repository

import (
	"context"

	"stock-admin/internal/domain/entity"
)

type SupervisorRepository interface {
	Get(ctx context.Context, id int64) (*entity.Supervisor, error)
	List(ctx context.Context) ([]*entity.Supervisor, error)
	Create(ctx context.Context, s *entity.Supervisor) error
	Update(ctx context.Context, s *entity.Supervisor) error
	Delete(ctx context.Context, id int64) error
}
