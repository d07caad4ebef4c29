package schema

// CoreMovieTable represents the 'core.movie' table
type CoreMovieTable struct {
	Table       string
	ID          string
	Title       string
	ReleaseDate string
	Genre       string
	Actors      string
	CreatedAt   string
	UpdatedAt   string
}

// CoreMovie is the schema definition for core.movie
var CoreMovie = CoreMovieTable{
	Table:       "core.movie",
	ID:          "id",
	Title:       "title",
	ReleaseDate: "releasedate",
	Genre:       "genre",
	Actors:      "actors",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CoreMovieTable) Columns() []string {
	return []string{t.ID, t.Title, t.ReleaseDate, t.Genre, t.Actors, t.CreatedAt, t.UpdatedAt}
}
