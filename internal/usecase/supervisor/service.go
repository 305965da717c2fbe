// Package supervisor provides the management use cases for supervisors.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/observability/metrics"
	"stock-admin/internal/repository"
)

type CreateInput struct {
	Name  string
	Email string
	Phone string
}

// UpdateInput represents a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID       int64
	Name     *string
	Email    *string
	Phone    *string
	IsActive *bool
}

type Service struct {
	Repo repository.SupervisorRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.Supervisor, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list supervisors: %w", err)
	}
	return list, nil
}

// Create validates in and persists a new active supervisor owned by actor.
func (s *Service) Create(ctx context.Context, actor entity.Actor, in CreateInput) (*entity.Supervisor, error) {
	sup := &entity.Supervisor{
		Name:      strings.TrimSpace(in.Name),
		Email:     entity.OptionalText(in.Email),
		Phone:     entity.OptionalText(in.Phone),
		IsActive:  true,
		CreatedBy: actor.ID,
	}
	if err := sup.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, sup); err != nil {
		return nil, fmt.Errorf("create supervisor: %w", err)
	}
	metrics.RecordMutation("supervisor", "create")
	return sup, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Supervisor, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	sup, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get supervisor: %w", err)
	}
	if sup == nil {
		return nil, ErrSupervisorNotFound
	}

	if in.Name != nil {
		sup.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		sup.Email = entity.OptionalText(*in.Email)
	}
	if in.Phone != nil {
		sup.Phone = entity.OptionalText(*in.Phone)
	}
	if in.IsActive != nil {
		sup.IsActive = *in.IsActive
	}
	if err := sup.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, sup); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrSupervisorNotFound
		}
		return nil, fmt.Errorf("update supervisor: %w", err)
	}
	metrics.RecordMutation("supervisor", "update")
	return sup, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrSupervisorNotFound
		}
		return fmt.Errorf("delete supervisor: %w", err)
	}
	metrics.RecordMutation("supervisor", "delete")
	return nil
}
