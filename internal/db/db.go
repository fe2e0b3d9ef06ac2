// Package db provides PostgreSQL storage for generation run archives. The
// archive is optional: the server runs without it when no database URL is
// configured.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// GenerationRun is one archived resume generation.
type GenerationRun struct {
	ID            uuid.UUID         `json:"id"`
	JobTitle      string            `json:"job_title"`
	Company       string            `json:"company"`
	JobTags       []string          `json:"job_tags"`
	Sections      map[string]string `json:"sections"`
	SelectedSlugs []string          `json:"selected_slugs"`
	SelectedCount int               `json:"selected_count"`
	CreatedAt     time.Time         `json:"created_at"`
}

// SaveRun archives one generation run and returns its ID.
func (db *DB) SaveRun(ctx context.Context, run *GenerationRun) (uuid.UUID, error) {
	sections, err := json.Marshal(run.Sections)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal sections: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO generation_runs (job_title, company, job_tags, sections, selected_slugs, selected_count)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		run.JobTitle, run.Company, run.JobTags, sections, run.SelectedSlugs, run.SelectedCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save generation run: %w", err)
	}
	return id, nil
}

// GetRun retrieves one archived run by ID. A missing run returns (nil, nil).
func (db *DB) GetRun(ctx context.Context, id uuid.UUID) (*GenerationRun, error) {
	var (
		run      GenerationRun
		sections []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_title, company, job_tags, sections, selected_slugs, selected_count, created_at
		 FROM generation_runs WHERE id = $1`,
		id,
	).Scan(&run.ID, &run.JobTitle, &run.Company, &run.JobTags, &sections, &run.SelectedSlugs, &run.SelectedCount, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get generation run: %w", err)
	}
	if err := json.Unmarshal(sections, &run.Sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sections: %w", err)
	}
	return &run, nil
}

// ListRuns returns the most recent archived runs, newest first, without
// their section bodies.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]GenerationRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_title, company, job_tags, selected_slugs, selected_count, created_at
		 FROM generation_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}
	defer rows.Close()

	var runs []GenerationRun
	for rows.Next() {
		var run GenerationRun
		if err := rows.Scan(&run.ID, &run.JobTitle, &run.Company, &run.JobTags, &run.SelectedSlugs, &run.SelectedCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read generation runs: %w", err)
	}
	return runs, nil
}

// Migrate creates the archive schema if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS generation_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			job_title TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			job_tags TEXT[] NOT NULL DEFAULT '{}',
			sections JSONB NOT NULL DEFAULT '{}',
			selected_slugs TEXT[] NOT NULL DEFAULT '{}',
			selected_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to migrate generation_runs: %w", err)
	}
	return nil
}
