// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/moviedb/internal/platform/apperr"
	"github.com/taibuivan/moviedb/internal/platform/dberr"
)

/*
TestWrap classifies storage errors into client-facing kinds.
*/
func TestWrap(t *testing.T) {
	uniqueViolation := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "movie_title_key"}

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"no_rows", pgx.ErrNoRows, apperr.CodeNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperr.CodeNotFound},
		{"unique_violation", uniqueViolation, apperr.CodeConflict},
		{"other_pg_error", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, apperr.CodeInternal},
		{"connection_error", errors.New("connection refused"), apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "Movie", "get_movie")
			assert.True(t, apperr.HasCode(wrapped, tt.wantCode))
			assert.ErrorIs(t, wrapped, tt.err)
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "Movie", "get_movie"))
}
