// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/moviedb/internal/platform/apperr"
	"github.com/taibuivan/moviedb/internal/platform/ctxutil"
	"github.com/taibuivan/moviedb/internal/platform/sec"
	"github.com/taibuivan/moviedb/internal/platform/validate"
	"github.com/taibuivan/moviedb/pkg/textnorm"
	"github.com/taibuivan/moviedb/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer defines the contract for minting signin tokens.
type TokenIssuer interface {
	// Issue creates a signed token asserting subjectID and username.
	Issue(subjectID, username string) (string, error)
}

// PasswordHasher defines the contract for one-way password derivation.
type PasswordHasher interface {
	Hash(plainTextPassword string) (string, error)
	Compare(plainTextPassword, existingHash string) bool
}

// Service implements the signup and signin use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or signin logic must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	hasher         PasswordHasher
	tokenIssuer    TokenIssuer

	// dummyHash is compared against when the username is unknown so both
	// signin failures cost one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash string
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, hasher PasswordHasher, issuer TokenIssuer) *Service {
	return &Service{
		userRepository: userRepo,
		hasher:         hasher,
		tokenIssuer:    issuer,
	}
}

// # Registration Flow

// SignupInput holds the data required to enroll a new account.
type SignupInput struct {
	Name     string
	Username string
	Password string
}

/*
Create validates, hashes, and persists a brand new user account.

Parameters:
  - ctx: context.Context
  - input: SignupInput

Returns:
  - *User: Created entity
  - error: MissingField, ValidationError, Conflict (username taken) or storage errors
*/
func (service *Service) Create(ctx context.Context, input SignupInput) (*User, error) {
	username := textnorm.Canonical(input.Username)
	name := textnorm.Canonical(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).
		RequiredPresent(FieldPassword, input.Password != "").
		MaxLen(FieldUsername, username, MaxUsernameLength).
		MaxLen(FieldName, name, MaxNameLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Pre-check for a friendly Conflict. The unique index still decides races.
	_, err := service.userRepository.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, duplicateUsername()
	case !apperr.HasCode(err, apperr.CodeNotFound):
		return nil, err
	}

	passwordHash, err := service.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, sec.ErrPasswordTooLong) {
			return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   FieldPassword,
				Message: fmt.Sprintf("Maximum %d bytes", sec.MaxPasswordBytes),
			})
		}
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	user := &User{
		ID:           uuid.New(),
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		if apperr.HasCode(err, apperr.CodeConflict) {
			return nil, duplicateUsername().WithCause(err)
		}
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// # Authentication Flow

/*
Verify checks a username/password pair against the stored hash.

Returns:
  - *User: The matching account
  - error: ErrUserNotFound, ErrIncorrectPassword or storage errors
*/
func (service *Service) Verify(ctx context.Context, username, password string) (*User, error) {
	user, err := service.userRepository.FindByUsername(ctx, textnorm.Canonical(username))
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			service.hasher.Compare(password, service.fallbackHash())
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !service.hasher.Compare(password, user.PasswordHash) {
		return nil, ErrIncorrectPassword
	}

	return user, nil
}

/*
Signin verifies credentials and issues a signed token.

Both credential failures collapse into the same 401 so the response does not
reveal whether the username exists. The precise reason stays in the cause.

Returns:
  - string: The bare signed token (no scheme prefix)
  - error: MissingField, Unauthorized or internal failures
*/
func (service *Service) Signin(ctx context.Context, username, password string) (string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).
		RequiredPresent(FieldPassword, password != "")
	if err := validator.Err(); err != nil {
		return "", err
	}

	user, err := service.Verify(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrIncorrectPassword) {
			ctxutil.GetLogger(ctx).InfoContext(ctx, "signin_rejected", slog.String("reason", err.Error()))
			return "", apperr.Unauthorized("Invalid username or password").WithCause(err)
		}
		return "", err
	}

	token, err := service.tokenIssuer.Issue(user.ID, user.Username)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("auth_service_token_issue_failed: %w", err))
	}

	return token, nil
}

// fallbackHash lazily derives a throwaway hash for unknown usernames.
func (service *Service) fallbackHash() string {
	service.dummyOnce.Do(func() {
		hash, err := service.hasher.Hash(uuid.New())
		if err == nil {
			service.dummyHash = hash
		}
	})
	return service.dummyHash
}

func duplicateUsername() *apperr.AppError {
	return apperr.Conflict("A user with that username already exists")
}
