package db

import (
	"database/sql"
)

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS article_names (
    id              BIGSERIAL PRIMARY KEY,
    name            TEXT NOT NULL,
    default_unit    TEXT NOT NULL DEFAULT 'pièces',
    description     TEXT,
    is_active       BOOLEAN NOT NULL DEFAULT TRUE,
    created_by      TEXT NOT NULL,
    created_by_name TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS supervisors (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    email       TEXT,
    phone       TEXT,
    is_active   BOOLEAN NOT NULL DEFAULT TRUE,
    created_by  TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// 名前は重複可(一意制約なし)。一覧表示用のインデックスのみ
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_article_names_name ON article_names(name)`,
		`CREATE INDEX IF NOT EXISTS idx_article_names_active ON article_names(is_active) WHERE is_active = TRUE`,
		`CREATE INDEX IF NOT EXISTS idx_supervisors_name ON supervisors(name)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// 単位は固定の選択肢のみ。既に存在する場合は無視
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_article_names_default_unit'
    ) THEN
        ALTER TABLE article_names ADD CONSTRAINT chk_article_names_default_unit
        CHECK (default_unit IN ('pièces', 'kg', 'litres', 'mètres', 'boîtes',
                                'paquets', 'tubes', 'bouteilles', 'cartons', 'sacs'));
    END IF;
END $$;
`)

	return nil
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_supervisors_name`,
		`DROP INDEX IF EXISTS idx_article_names_active`,
		`DROP INDEX IF EXISTS idx_article_names_name`,
		`DROP TABLE IF EXISTS supervisors`,
		`DROP TABLE IF EXISTS article_names`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
