// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package movie implements the guarded movie catalogue: entity, storage,
// validation rules and the /movies HTTP surface.
package movie

import "time"

// Genre is one of the fixed catalogue genres.
type Genre string

const (
	GenreAction         Genre = "Action"
	GenreAdventure      Genre = "Adventure"
	GenreComedy         Genre = "Comedy"
	GenreDrama          Genre = "Drama"
	GenreFantasy        Genre = "Fantasy"
	GenreHorror         Genre = "Horror"
	GenreMystery        Genre = "Mystery"
	GenreThriller       Genre = "Thriller"
	GenreWestern        Genre = "Western"
	GenreScienceFiction Genre = "Science Fiction"
)

// Genres lists every accepted genre in display order.
var Genres = []Genre{
	GenreAction, GenreAdventure, GenreComedy, GenreDrama, GenreFantasy,
	GenreHorror, GenreMystery, GenreThriller, GenreWestern, GenreScienceFiction,
}

// Actor pairs a performer with the role played.
type Actor struct {
	ActorName     string `json:"actorName"`
	CharacterName string `json:"characterName"`
}

// Movie is a catalogue entry. Title is the lookup key and is unique.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate int       `json:"releaseDate"`
	Genre       Genre     `json:"genre"`
	Actors      []Actor   `json:"actors"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Patch carries the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string  `json:"title"`
	ReleaseDate *int     `json:"releaseDate"`
	Genre       *Genre   `json:"genre"`
	Actors      *[]Actor `json:"actors"`
}

// Catalogue rules.
const (
	MinActors      = 3
	MinReleaseYear = 1900
	MaxReleaseYear = 2100
	MaxTitleLength = 200
)

const (
	FieldTitle       = "title"
	FieldReleaseDate = "releaseDate"
	FieldGenre       = "genre"
	FieldActors      = "actors"
	FieldActorName   = "actorName"
)
