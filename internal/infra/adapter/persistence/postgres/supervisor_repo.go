package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/repository"
)

type SupervisorRepo struct{ db DBTX }

func NewSupervisorRepo(db DBTX) repository.SupervisorRepository {
	return &SupervisorRepo{db: db}
}

func scanSupervisor(s rowScanner) (*entity.Supervisor, error) {
	var (
		sup          entity.Supervisor
		email, phone sql.NullString
	)
	if err := s.Scan(
		&sup.ID, &sup.Name, &email, &phone, &sup.IsActive,
		&sup.CreatedBy, &sup.CreatedAt, &sup.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if email.Valid {
		sup.Email = &email.String
	}
	if phone.Valid {
		sup.Phone = &phone.String
	}
	return &sup, nil
}

func (repo *SupervisorRepo) Get(ctx context.Context, id int64) (*entity.Supervisor, error) {
	const query = `
SELECT id, name, email, phone, is_active, created_by, created_at, updated_at
FROM supervisors
WHERE id = $1
LIMIT 1`
	sup, err := scanSupervisor(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return sup, nil
}

func (repo *SupervisorRepo) List(ctx context.Context) ([]*entity.Supervisor, error) {
	const query = `
SELECT id, name, email, phone, is_active, created_by, created_at, updated_at
FROM supervisors
ORDER BY name ASC, id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.Supervisor, 0, 20)
	for rows.Next() {
		sup, err := scanSupervisor(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		items = append(items, sup)
	}
	return items, rows.Err()
}

func (repo *SupervisorRepo) Create(ctx context.Context, sup *entity.Supervisor) error {
	const query = `
INSERT INTO supervisors (name, email, phone, is_active, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING id, created_at, updated_at`
	rows, err := repo.db.QueryContext(ctx, query,
		sup.Name, nullableText(sup.Email), nullableText(sup.Phone), sup.IsActive, sup.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("Create: %w", err)
		}
		return fmt.Errorf("Create: %w", sql.ErrNoRows)
	}
	if err := rows.Scan(&sup.ID, &sup.CreatedAt, &sup.UpdatedAt); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *SupervisorRepo) Update(ctx context.Context, sup *entity.Supervisor) error {
	const query = `
UPDATE supervisors SET
       name       = $1,
       email      = $2,
       phone      = $3,
       is_active  = $4,
       updated_at = now()
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		sup.Name, nullableText(sup.Email), nullableText(sup.Phone), sup.IsActive, sup.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *SupervisorRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM supervisors WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
