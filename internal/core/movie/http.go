// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/moviedb/internal/platform/request"
	"github.com/taibuivan/moviedb/internal/platform/respond"
)

// CreatedResponse is returned by POST /movies.
type CreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Movie   *Movie `json:"movie"`
}

// UpdatedResponse is returned by PUT /movies/{title}.
type UpdatedResponse struct {
	Success bool   `json:"success"`
	Movie   *Movie `json:"movie"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /movies sub-router. Authentication is applied by the caller.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listMovies)
	router.Post("/", handler.createMovie)
	router.Get("/{title}", handler.getMovie)
	router.Put("/{title}", handler.updateMovie)
	router.Delete("/{title}", handler.deleteMovie)

	return router
}

func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	movies, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movies)
}

func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	m, err := handler.service.Get(request.Context(), requestutil.Param(request, "title"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, m)
}

func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var input Movie
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, CreatedResponse{
		Success: true,
		Message: "Movie added successfully",
		Movie:   &input,
	})
}

func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	m, err := handler.service.Update(request.Context(), requestutil.Param(request, "title"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, UpdatedResponse{Success: true, Movie: m})
}

func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "title")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, http.StatusOK, "Movie deleted successfully")
}
