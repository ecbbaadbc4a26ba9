package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"house-price/internal/domain"
)

var ErrArtifactNotFound = errors.New("artifact not found")

// PgArtifactRepository registra y lee versiones del artefacto del modelo.
//
//	CREATE TABLE model_artifacts (
//		id uuid PRIMARY KEY,
//		name text NOT NULL,
//		version text NOT NULL,
//		document bytea NOT NULL,
//		created_at timestamptz NOT NULL DEFAULT now(),
//		UNIQUE (name, version)
//	);
type PgArtifactRepository struct {
	pool pgQuerier
}

// pgQuerier es lo que el repositorio usa de *pgxpool.Pool.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func NewPgArtifactRepository(pool *pgxpool.Pool) *PgArtifactRepository {
	return &PgArtifactRepository{pool: pool}
}

func (r *PgArtifactRepository) Create(ctx context.Context, rec domain.ArtifactRecord) error {
	const query = `
		INSERT INTO model_artifacts (id, name, version, document, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.Name,
		rec.Version,
		rec.Document,
		rec.CreatedAt,
	)
	return err
}

func (r *PgArtifactRepository) GetLatest(ctx context.Context, name string) (domain.ArtifactRecord, error) {
	const query = `
		SELECT id, name, version, document, created_at
		FROM model_artifacts
		WHERE name = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var rec domain.ArtifactRecord
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&rec.ID,
		&rec.Name,
		&rec.Version,
		&rec.Document,
		&rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ArtifactRecord{}, ErrArtifactNotFound
	}
	return rec, err
}
