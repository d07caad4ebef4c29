// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/moviedb/internal/platform/ctxutil"
	"github.com/taibuivan/moviedb/internal/platform/validate"
	"github.com/taibuivan/moviedb/pkg/pointer"
	"github.com/taibuivan/moviedb/pkg/textnorm"
	"github.com/taibuivan/moviedb/pkg/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (service *Service) List(ctx context.Context) ([]*Movie, error) {
	return service.repo.List(ctx)
}

func (service *Service) Get(ctx context.Context, title string) (*Movie, error) {
	return service.repo.GetByTitle(ctx, textnorm.Canonical(title))
}

// Create validates a complete movie and stores it under a fresh ID.
func (service *Service) Create(ctx context.Context, m *Movie) error {
	m.Title = textnorm.Canonical(m.Title)
	normalizeActors(m.Actors)

	if err := validateMovie(m); err != nil {
		return err
	}

	m.ID = uuid.New()
	if err := service.repo.Create(ctx, m); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "movie_created",
		slog.String("movie_id", m.ID),
		slog.String("title", m.Title),
		slog.String("by", ctxutil.GetUserID(ctx)),
	)
	return nil
}

// Update merges patch onto the stored movie and re-validates the result.
func (service *Service) Update(ctx context.Context, title string, patch Patch) (*Movie, error) {
	originalTitle := textnorm.Canonical(title)

	current, err := service.repo.GetByTitle(ctx, originalTitle)
	if err != nil {
		return nil, err
	}

	merged := &Movie{
		ID:          current.ID,
		Title:       textnorm.Canonical(pointer.Fallback(patch.Title, current.Title)),
		ReleaseDate: pointer.Fallback(patch.ReleaseDate, current.ReleaseDate),
		Genre:       pointer.Fallback(patch.Genre, current.Genre),
		Actors:      pointer.Fallback(patch.Actors, current.Actors),
		CreatedAt:   current.CreatedAt,
	}
	normalizeActors(merged.Actors)

	if err := validateMovie(merged); err != nil {
		return nil, err
	}

	if err := service.repo.Update(ctx, originalTitle, merged); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "movie_updated",
		slog.String("movie_id", merged.ID),
		slog.String("title", merged.Title),
		slog.String("by", ctxutil.GetUserID(ctx)),
	)
	return merged, nil
}

func (service *Service) Delete(ctx context.Context, title string) error {
	canonical := textnorm.Canonical(title)
	if err := service.repo.Delete(ctx, canonical); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).WarnContext(ctx, "movie_deleted",
		slog.String("title", canonical),
		slog.String("by", ctxutil.GetUserID(ctx)),
	)
	return nil
}

func normalizeActors(actors []Actor) {
	for i := range actors {
		actors[i].ActorName = textnorm.Canonical(actors[i].ActorName)
		actors[i].CharacterName = textnorm.Canonical(actors[i].CharacterName)
	}
}

func validateMovie(m *Movie) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, m.Title).
		RequiredPresent(FieldReleaseDate, m.ReleaseDate != 0).
		Required(FieldGenre, string(m.Genre)).
		RequiredPresent(FieldActors, len(m.Actors) > 0)

	// Missing fields are reported alone.
	if validator.HasErrors() {
		return validator.Err()
	}

	validator.MaxLen(FieldTitle, m.Title, MaxTitleLength).
		Range(FieldReleaseDate, m.ReleaseDate, MinReleaseYear, MaxReleaseYear).
		OneOf(FieldGenre, string(m.Genre), genreNames()...).
		MinItems(FieldActors, len(m.Actors), MinActors)

	for i, actor := range m.Actors {
		validator.Custom(fmt.Sprintf("%s[%d].%s", FieldActors, i, FieldActorName), actor.ActorName == "", "Actor name is required")
	}

	return validator.Err()
}

func genreNames() []string {
	names := make([]string, len(Genres))
	for i, g := range Genres {
		names[i] = string(g)
	}
	return names
}
