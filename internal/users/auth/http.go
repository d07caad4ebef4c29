// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/moviedb/internal/platform/constants"
	requestutil "github.com/taibuivan/moviedb/internal/platform/request"
	"github.com/taibuivan/moviedb/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the public signup and signin endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// RegisterRoutes attaches the public authentication routes to router.
//
// # Endpoints
//   - POST /signup : Creates a new account.
//   - POST /signin : Authenticates and returns a JWT.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/signup", handler.signup)
	router.Post("/signin", handler.signin)
}

// # Request & Response Payloads

type signupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SigninResponse carries a token ready to be sent back as the Authorization header.
type SigninResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

/*
Signup handles the creation of a new user account.

POST /signup

Response:
  - 201: {success:true, message}
  - 400: Missing username/password or invalid JSON
  - 409: Username already exists
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err := handler.authService.Create(request.Context(), SignupInput{
		Name:     input.Name,
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, http.StatusCreated, "User registered successfully")
}

/*
Signin authenticates a user and returns a signed token.

POST /signin

Response:
  - 200: {success:true, token:"JWT <token>"}
  - 401: Invalid username or password
*/
func (handler *Handler) signin(writer http.ResponseWriter, request *http.Request) {
	var input signinRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.Signin(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, SigninResponse{
		Success: true,
		Token:   constants.AuthScheme + " " + token,
	})
}
