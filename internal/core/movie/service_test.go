// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/moviedb/internal/core/movie"
	"github.com/taibuivan/moviedb/internal/core/movie/movietest"
	"github.com/taibuivan/moviedb/internal/platform/apperr"
	"github.com/taibuivan/moviedb/pkg/pointer"
)

func threeActors() []movie.Actor {
	return []movie.Actor{
		{ActorName: "Keanu Reeves", CharacterName: "Neo"},
		{ActorName: "Laurence Fishburne", CharacterName: "Morpheus"},
		{ActorName: "Carrie-Anne Moss", CharacterName: "Trinity"},
	}
}

func matrix() *movie.Movie {
	return &movie.Movie{
		Title:       "The Matrix",
		ReleaseDate: 1999,
		Genre:       movie.GenreScienceFiction,
		Actors:      threeActors(),
	}
}

/*
TestService_Create_Validation covers the catalogue rules for a new movie.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(m *movie.Movie)
		wantCode string
	}{
		{"valid", func(*movie.Movie) {}, ""},
		{"missing_title", func(m *movie.Movie) { m.Title = "" }, apperr.CodeMissingField},
		{"missing_release_date", func(m *movie.Movie) { m.ReleaseDate = 0 }, apperr.CodeMissingField},
		{"missing_genre", func(m *movie.Movie) { m.Genre = "" }, apperr.CodeMissingField},
		{"missing_actors", func(m *movie.Movie) { m.Actors = nil }, apperr.CodeMissingField},
		{"too_few_actors", func(m *movie.Movie) { m.Actors = m.Actors[:2] }, apperr.CodeValidation},
		{"year_too_early", func(m *movie.Movie) { m.ReleaseDate = 1899 }, apperr.CodeValidation},
		{"year_too_late", func(m *movie.Movie) { m.ReleaseDate = 2101 }, apperr.CodeValidation},
		{"year_lower_bound", func(m *movie.Movie) { m.ReleaseDate = 1900 }, ""},
		{"year_upper_bound", func(m *movie.Movie) { m.ReleaseDate = 2100 }, ""},
		{"unknown_genre", func(m *movie.Movie) { m.Genre = "Musical" }, apperr.CodeValidation},
		{"genre_case_sensitive", func(m *movie.Movie) { m.Genre = "action" }, apperr.CodeValidation},
		{"blank_actor_name", func(m *movie.Movie) { m.Actors[1].ActorName = "  " }, apperr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := movie.NewService(movietest.NewMemoryRepository())
			m := matrix()
			tt.mutate(m)

			err := service.Create(context.Background(), m)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.NotEmpty(t, m.ID)
				return
			}
			assert.True(t, apperr.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

/*
TestService_CreateGetDelete walks one record through its lifecycle.
*/
func TestService_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	service := movie.NewService(movietest.NewMemoryRepository())

	require.NoError(t, service.Create(ctx, matrix()))

	got, err := service.Get(ctx, "The Matrix")
	require.NoError(t, err)
	assert.Equal(t, 1999, got.ReleaseDate)
	assert.Len(t, got.Actors, 3)

	err = service.Create(ctx, matrix())
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

	require.NoError(t, service.Delete(ctx, "The Matrix"))

	_, err = service.Get(ctx, "The Matrix")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	err = service.Delete(ctx, "The Matrix")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_Update applies partial patches and re-validates the merged record.
*/
func TestService_Update(t *testing.T) {
	ctx := context.Background()
	service := movie.NewService(movietest.NewMemoryRepository())
	require.NoError(t, service.Create(ctx, matrix()))

	updated, err := service.Update(ctx, "The Matrix", movie.Patch{ReleaseDate: pointer.To(2000)})
	require.NoError(t, err)
	assert.Equal(t, 2000, updated.ReleaseDate)
	assert.Equal(t, movie.GenreScienceFiction, updated.Genre)
	assert.Len(t, updated.Actors, 3)

	_, err = service.Update(ctx, "The Matrix", movie.Patch{Actors: pointer.To(threeActors()[:1])})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.Update(ctx, "The Matrix", movie.Patch{Genre: pointer.To(movie.Genre("Opera"))})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.Update(ctx, "Unknown", movie.Patch{ReleaseDate: pointer.To(2000)})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	renamed, err := service.Update(ctx, "The Matrix", movie.Patch{Title: pointer.To("The Matrix Reloaded")})
	require.NoError(t, err)
	assert.Equal(t, "The Matrix Reloaded", renamed.Title)

	_, err = service.Get(ctx, "The Matrix")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	// The rejected patches above left the stored record alone.
	stored, err := service.Get(ctx, "The Matrix Reloaded")
	require.NoError(t, err)
	assert.Equal(t, 2000, stored.ReleaseDate)
	assert.Len(t, stored.Actors, 3)
}

/*
TestService_List returns an empty, non-nil list for an empty catalogue.
*/
func TestService_List(t *testing.T) {
	ctx := context.Background()
	service := movie.NewService(movietest.NewMemoryRepository())

	movies, err := service.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)

	require.NoError(t, service.Create(ctx, matrix()))
	movies, err = service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 1)
}
