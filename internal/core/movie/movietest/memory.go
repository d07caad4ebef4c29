// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package movietest provides an in-memory [movie.Repository] for tests.
package movietest

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/moviedb/internal/core/movie"
	"github.com/taibuivan/moviedb/internal/platform/apperr"
)

// MemoryRepository keeps movies in a map keyed by title.
type MemoryRepository struct {
	mu     sync.RWMutex
	movies map[string]movie.Movie

	// Gets counts GetByTitle calls, letting cache tests observe fall-through.
	Gets int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{movies: make(map[string]movie.Movie)}
}

func clone(m movie.Movie) *movie.Movie {
	m.Actors = slices.Clone(m.Actors)
	return &m
}

func (repository *MemoryRepository) List(_ context.Context) ([]*movie.Movie, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	movies := make([]*movie.Movie, 0, len(repository.movies))
	for _, m := range repository.movies {
		movies = append(movies, clone(m))
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].Title < movies[j].Title })
	return movies, nil
}

func (repository *MemoryRepository) GetByTitle(_ context.Context, title string) (*movie.Movie, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.Gets++
	m, ok := repository.movies[title]
	if !ok {
		return nil, apperr.NotFound("Movie")
	}
	return clone(m), nil
}

func (repository *MemoryRepository) Create(_ context.Context, m *movie.Movie) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.movies[m.Title]; exists {
		return apperr.Conflict("Movie already exists")
	}
	now := time.Now().UTC()
	m.CreatedAt, m.UpdatedAt = now, now
	repository.movies[m.Title] = *clone(*m)
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, originalTitle string, m *movie.Movie) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	current, ok := repository.movies[originalTitle]
	if !ok {
		return apperr.NotFound("Movie")
	}
	if m.Title != originalTitle {
		if _, taken := repository.movies[m.Title]; taken {
			return apperr.Conflict("Movie already exists")
		}
	}

	m.ID = current.ID
	m.CreatedAt = current.CreatedAt
	m.UpdatedAt = time.Now().UTC()

	delete(repository.movies, originalTitle)
	repository.movies[m.Title] = *clone(*m)
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, title string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.movies[title]; !ok {
		return apperr.NotFound("Movie")
	}
	delete(repository.movies, title)
	return nil
}
