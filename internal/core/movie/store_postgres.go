// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taibuivan/moviedb/internal/platform/apperr"
	"github.com/taibuivan/moviedb/internal/platform/database/schema"
	"github.com/taibuivan/moviedb/internal/platform/dberr"
	"github.com/taibuivan/moviedb/internal/platform/postgres"
)

const resourceName = "Movie"

// PostgresRepository stores movies in core.movie with actors as JSONB.
type PostgresRepository struct {
	db postgres.DBTX
}

func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.CoreMovie.ID, schema.CoreMovie.Title, schema.CoreMovie.ReleaseDate, schema.CoreMovie.Genre,
		schema.CoreMovie.Actors, schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
	)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (*Movie, error) {
	m := &Movie{}
	var genre string
	var actors []byte
	if err := row.Scan(&m.ID, &m.Title, &m.ReleaseDate, &genre, &actors, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Genre = Genre(genre)
	if err := json.Unmarshal(actors, &m.Actors); err != nil {
		return nil, fmt.Errorf("decode actors: %w", err)
	}
	return m, nil
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns(), schema.CoreMovie.Table, schema.CoreMovie.Title,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_movies")
	}
	defer rows.Close()

	movies := make([]*Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceName, "scan_movie")
		}
		movies = append(movies, m)
	}

	return movies, dberr.Wrap(rows.Err(), resourceName, "list_movies")
}

func (repository *PostgresRepository) GetByTitle(ctx context.Context, title string) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.CoreMovie.Table, schema.CoreMovie.Title,
	)

	m, err := scanMovie(repository.db.QueryRow(ctx, query, title))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_movie")
	}
	return m, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, m *Movie) error {
	actors, err := json.Marshal(m.Actors)
	if err != nil {
		return apperr.Internal(fmt.Errorf("encode actors: %w", err))
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CoreMovie.Table, schema.CoreMovie.ID, schema.CoreMovie.Title, schema.CoreMovie.ReleaseDate,
		schema.CoreMovie.Genre, schema.CoreMovie.Actors, schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
		schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
	)

	err = repository.db.QueryRow(ctx, query, m.ID, m.Title, m.ReleaseDate, string(m.Genre), actors).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, resourceName, "create_movie")
}

func (repository *PostgresRepository) Update(ctx context.Context, originalTitle string, m *Movie) error {
	actors, err := json.Marshal(m.Actors)
	if err != nil {
		return apperr.Internal(fmt.Errorf("encode actors: %w", err))
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s, %s
	`,
		schema.CoreMovie.Table,
		schema.CoreMovie.Title, schema.CoreMovie.ReleaseDate, schema.CoreMovie.Genre, schema.CoreMovie.Actors,
		schema.CoreMovie.UpdatedAt, schema.CoreMovie.Title,
		schema.CoreMovie.ID, schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
	)

	err = repository.db.QueryRow(ctx, query, originalTitle, m.Title, m.ReleaseDate, string(m.Genre), actors).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, resourceName, "update_movie")
}

func (repository *PostgresRepository) Delete(ctx context.Context, title string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreMovie.Table, schema.CoreMovie.Title)

	cmd, err := repository.db.Exec(ctx, query, title)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_movie")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}
