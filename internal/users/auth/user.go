// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the credential store and the signup/signin flow.

It defines the User entity, the repository contract used to persist it and
the service that hashes passwords, verifies them and issues signin tokens.

# Architecture

This layer is the "Truth" of identity. Usernames are unique and
case-sensitive, and a password hash never leaves the process.
*/
package auth

import (
	"errors"
	"time"
)

// # Domain Entities

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
}

// # Domain Errors

var (
	// ErrUserNotFound is returned by [Service.Verify] when no account has the username.
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrIncorrectPassword is returned by [Service.Verify] when the password does not match.
	ErrIncorrectPassword = errors.New("auth: incorrect password")
)

// # Field Identifiers

const (
	FieldName     = "name"
	FieldUsername = "username"
	FieldPassword = "password"
)

// Length limits, in Unicode characters.
const (
	MaxUsernameLength = 64
	MaxNameLength     = 100
)
