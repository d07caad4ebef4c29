// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/moviedb/internal/platform/database/schema"
	"github.com/taibuivan/moviedb/internal/platform/dberr"
	"github.com/taibuivan/moviedb/internal/platform/postgres"
)

// # User Repository

// PostgresUserRepository implements [UserRepository] on the users.account table.
type PostgresUserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db postgres.DBTX) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

/*
Create persists a new user record into the users.account table.

The unique index on username is the source of truth: two concurrent signups
that both pass the service pre-check are split here, the loser receiving a
Conflict.
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Username,
		schema.UserAccount.Password, schema.UserAccount.CreatedAt,
	)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := repository.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	)

	return dberr.Wrap(err, "User", "postgres_user_repo_create")
}

/*
FindByUsername retrieves a user record by its exact username.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Username,
		schema.UserAccount.Password, schema.UserAccount.CreatedAt,
		schema.UserAccount.Table, schema.UserAccount.Username,
	)

	user := &User{}
	err := repository.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User", "postgres_user_repo_find_by_username")
	}

	return user, nil
}
