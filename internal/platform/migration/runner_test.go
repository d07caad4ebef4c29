// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/movies", "pgx5://u:p@localhost:5432/movies"},
		{"postgresql://u:p@db/movies?sslmode=disable", "pgx5://u:p@db/movies?sslmode=disable"},
		{"pgx5://u:p@db/movies", "pgx5://u:p@db/movies"},
		{"host=db user=u dbname=movies", "host=db user=u dbname=movies"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
		})
	}
}
