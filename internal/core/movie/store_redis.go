// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/moviedb/internal/platform/constants"
)

// CachedRepository decorates a [Repository] with a Redis read-through cache
// on GetByTitle.
//
// The cache is best-effort: Redis failures are logged and the call falls
// through to the wrapped repository. Writes replace affected keys with a
// short-lived tombstone after the underlying store has accepted them. Fills
// use SET NX, so a read that loaded a row before the write cannot put the
// stale copy back while the tombstone holds the key.
type CachedRepository struct {
	Repository

	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps next with a cache whose entries live for ttl.
func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: next,
		client:     client,
		ttl:        ttl,
		logger:     logger,
	}
}

// tombstone marks a key invalidated by a write. It is never valid JSON.
const tombstone = "~"

// tombstoneTTL outlives any read that was in flight when the write committed.
const tombstoneTTL = 2 * constants.GlobalRequestTimeout

func cacheKey(title string) string {
	return constants.RedisPrefixMovie + title
}

/*
GetByTitle serves the movie from Redis when present, otherwise loads it from
the wrapped repository and stores it for ttl. Misses are not cached, and a
tombstoned key is read through without being refilled.
*/
func (repository *CachedRepository) GetByTitle(ctx context.Context, title string) (*Movie, error) {
	key := cacheKey(title)

	raw, err := repository.client.Get(ctx, key).Bytes()
	switch {
	case err == nil && string(raw) == tombstone:
	case err == nil:
		var cached Movie
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return &cached, nil
		}
		repository.logger.WarnContext(ctx, "movie_cache_corrupt_entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		repository.logger.WarnContext(ctx, "movie_cache_get_failed", slog.String("error", err.Error()))
	}

	m, err := repository.Repository.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(m); jsonErr == nil {
		if setErr := repository.client.SetNX(ctx, key, payload, repository.ttl).Err(); setErr != nil {
			repository.logger.WarnContext(ctx, "movie_cache_set_failed", slog.String("error", setErr.Error()))
		}
	}

	return m, nil
}

func (repository *CachedRepository) Update(ctx context.Context, originalTitle string, m *Movie) error {
	if err := repository.Repository.Update(ctx, originalTitle, m); err != nil {
		return err
	}
	repository.invalidate(ctx, originalTitle, m.Title)
	return nil
}

func (repository *CachedRepository) Delete(ctx context.Context, title string) error {
	if err := repository.Repository.Delete(ctx, title); err != nil {
		return err
	}
	repository.invalidate(ctx, title)
	return nil
}

func (repository *CachedRepository) invalidate(ctx context.Context, titles ...string) {
	pipe := repository.client.Pipeline()
	for _, title := range titles {
		pipe.Set(ctx, cacheKey(title), tombstone, tombstoneTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		repository.logger.WarnContext(ctx, "movie_cache_invalidate_failed", slog.String("error", err.Error()))
	}
}
