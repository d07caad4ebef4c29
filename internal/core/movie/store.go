// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import "context"

// Repository is the persistence contract for movies. Titles passed in are
// already canonicalized.
type Repository interface {
	List(ctx context.Context) ([]*Movie, error)
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	// Update replaces the record stored under originalTitle, which may differ
	// from movie.Title on a rename.
	Update(ctx context.Context, originalTitle string, movie *Movie) error
	Delete(ctx context.Context, title string) error
}
