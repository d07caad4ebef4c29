// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/moviedb/internal/core/movie"
	"github.com/taibuivan/moviedb/internal/platform/apperr"
)

var movieColumns = []string{"id", "title", "releasedate", "genre", "actors", "createdat", "updatedat"}

const actorsJSON = `[{"actorName":"Keanu Reeves","characterName":"Neo"},{"actorName":"Laurence Fishburne","characterName":"Morpheus"},{"actorName":"Carrie-Anne Moss","characterName":"Trinity"}]`

/*
TestPostgresRepository_Reads checks row hydration, JSONB decoding and not-found mapping.
*/
func TestPostgresRepository_Reads(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repository := movie.NewPostgresRepository(mock)
	stamp := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM core\.movie ORDER BY title`).
		WillReturnRows(pgxmock.NewRows(movieColumns).
			AddRow("m1", "The Matrix", 1999, "Science Fiction", []byte(actorsJSON), stamp, stamp))

	movies, err := repository.List(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, movie.GenreScienceFiction, movies[0].Genre)
	assert.Equal(t, "Morpheus", movies[0].Actors[1].CharacterName)

	mock.ExpectQuery(`SELECT .+ FROM core\.movie WHERE title = \$1`).
		WithArgs("The Matrix").
		WillReturnRows(pgxmock.NewRows(movieColumns).
			AddRow("m1", "The Matrix", 1999, "Science Fiction", []byte(actorsJSON), stamp, stamp))

	m, err := repository.GetByTitle(context.Background(), "The Matrix")
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)
	assert.Len(t, m.Actors, 3)

	mock.ExpectQuery(`SELECT .+ FROM core\.movie WHERE title = \$1`).
		WithArgs("Missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repository.GetByTitle(context.Background(), "Missing")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_Writes checks inserts, renames, deletes and constraint mapping.
*/
func TestPostgresRepository_Writes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repository := movie.NewPostgresRepository(mock)
	stamp := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	m := &movie.Movie{
		ID:          "m1",
		Title:       "The Matrix",
		ReleaseDate: 1999,
		Genre:       movie.GenreScienceFiction,
		Actors:      []movie.Actor{{ActorName: "Keanu Reeves", CharacterName: "Neo"}},
	}

	mock.ExpectQuery(`INSERT INTO core\.movie`).
		WithArgs("m1", "The Matrix", 1999, "Science Fiction", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"createdat", "updatedat"}).AddRow(stamp, stamp))

	require.NoError(t, repository.Create(context.Background(), m))
	assert.Equal(t, stamp, m.CreatedAt)

	mock.ExpectQuery(`INSERT INTO core\.movie`).
		WithArgs("m1", "The Matrix", 1999, "Science Fiction", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "movie_title_key"})

	err = repository.Create(context.Background(), m)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

	m.Title = "The Matrix Reloaded"
	mock.ExpectQuery(`UPDATE core\.movie`).
		WithArgs("The Matrix", "The Matrix Reloaded", 1999, "Science Fiction", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "createdat", "updatedat"}).AddRow("m1", stamp, stamp.Add(time.Hour)))

	require.NoError(t, repository.Update(context.Background(), "The Matrix", m))
	assert.Equal(t, stamp.Add(time.Hour), m.UpdatedAt)

	mock.ExpectQuery(`UPDATE core\.movie`).
		WithArgs("Ghost", "The Matrix Reloaded", 1999, "Science Fiction", pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	err = repository.Update(context.Background(), "Ghost", m)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	mock.ExpectExec(`DELETE FROM core\.movie`).
		WithArgs("The Matrix Reloaded").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repository.Delete(context.Background(), "The Matrix Reloaded"))

	mock.ExpectExec(`DELETE FROM core\.movie`).
		WithArgs("The Matrix Reloaded").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	err = repository.Delete(context.Background(), "The Matrix Reloaded")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}
