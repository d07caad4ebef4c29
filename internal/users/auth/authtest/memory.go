// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package authtest provides an in-memory [auth.UserRepository] for tests.
package authtest

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/moviedb/internal/platform/apperr"
	"github.com/taibuivan/moviedb/internal/users/auth"
)

// MemoryUserRepository stores users in a map keyed by username.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]auth.User

	// CreateErr, when set, is returned by Create without storing anything.
	CreateErr error
}

// NewMemoryUserRepository returns an empty repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]auth.User)}
}

// FindByUsername implements [auth.UserRepository].
func (repository *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return &user, nil
}

// Create implements [auth.UserRepository] and enforces username uniqueness.
func (repository *MemoryUserRepository) Create(_ context.Context, user *auth.User) error {
	if repository.CreateErr != nil {
		return repository.CreateErr
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.users[user.Username]; exists {
		return apperr.Conflict("User already exists")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	repository.users[user.Username] = *user
	return nil
}

// Len reports how many users are stored.
func (repository *MemoryUserRepository) Len() int {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return len(repository.users)
}
