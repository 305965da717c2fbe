package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/repository"
)

const articleNameColumns = `id, name, default_unit, description, is_active,
       created_by, created_by_name, created_at, updated_at`

const insertArticleName = `
INSERT INTO article_names (name, default_unit, description, is_active, created_by, created_by_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING id, created_at, updated_at`

type ArticleNameRepo struct{ db DBTX }

func NewArticleNameRepo(db DBTX) repository.ArticleNameRepository {
	return &ArticleNameRepo{db: db}
}

func scanArticleName(s rowScanner) (*entity.ArticleName, error) {
	var (
		a           entity.ArticleName
		unit        string
		description sql.NullString
	)
	if err := s.Scan(
		&a.ID, &a.Name, &unit, &description, &a.IsActive,
		&a.CreatedBy, &a.CreatedByName, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.DefaultUnit = entity.Unit(unit)
	if description.Valid {
		a.Description = &description.String
	}
	return &a, nil
}

// nullableText maps an absent description to SQL NULL.
func nullableText(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (repo *ArticleNameRepo) Get(ctx context.Context, id int64) (*entity.ArticleName, error) {
	query := `
SELECT ` + articleNameColumns + `
FROM article_names
WHERE id = $1
LIMIT 1`
	a, err := scanArticleName(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *ArticleNameRepo) List(ctx context.Context) ([]*entity.ArticleName, error) {
	query := `
SELECT ` + articleNameColumns + `
FROM article_names
ORDER BY name ASC, id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.ArticleName, 0, 50)
	for rows.Next() {
		a, err := scanArticleName(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// Create inserts a and fills in the store-assigned ID and timestamps.
func (repo *ArticleNameRepo) Create(ctx context.Context, a *entity.ArticleName) error {
	rows, err := repo.db.QueryContext(ctx, insertArticleName,
		a.Name, string(a.DefaultUnit), nullableText(a.Description),
		a.IsActive, a.CreatedBy, a.CreatedByName,
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
	if err := rows.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// CreateBatch inserts items in a single transaction. Either all rows are
// written or none are.
func (repo *ArticleNameRepo) CreateBatch(ctx context.Context, items []*entity.ArticleName) (err error) {
	if len(items) == 0 {
		return nil
	}

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("CreateBatch: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i, a := range items {
		if err = tx.QueryRowContext(ctx, insertArticleName,
			a.Name, string(a.DefaultUnit), nullableText(a.Description),
			a.IsActive, a.CreatedBy, a.CreatedByName,
		).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return fmt.Errorf("CreateBatch: item %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("CreateBatch: commit: %w", err)
	}
	return nil
}

func (repo *ArticleNameRepo) Update(ctx context.Context, a *entity.ArticleName) error {
	const query = `
UPDATE article_names SET
       name         = $1,
       default_unit = $2,
       description  = $3,
       is_active    = $4,
       updated_at   = now()
WHERE id = $5
RETURNING updated_at`
	rows, err := repo.db.QueryContext(ctx, query,
		a.Name, string(a.DefaultUnit), nullableText(a.Description), a.IsActive, a.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("Update: %w", err)
		}
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	if err := rows.Scan(&a.UpdatedAt); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *ArticleNameRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM article_names WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
