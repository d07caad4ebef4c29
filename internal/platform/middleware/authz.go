// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/taibuivan/moviedb/internal/platform/apperr"
	"github.com/taibuivan/moviedb/internal/platform/constants"
	"github.com/taibuivan/moviedb/internal/platform/ctxutil"
	"github.com/taibuivan/moviedb/internal/platform/respond"
	"github.com/taibuivan/moviedb/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// Defining it here decouples the middleware from [sec.TokenService] so tests
// can inject a stub.
type TokenVerifier interface {
	Verify(token string) (*sec.AuthClaims, error)
}

// Authenticate guards a route group with the "Authorization: JWT <token>" header.
//
// # Flow
//  1. Header absent: reject with 401 UNAUTHORIZED.
//  2. Scheme other than JWT, or not exactly two parts: reject with 401 UNAUTHORIZED.
//  3. Verify the token via [TokenVerifier]; expired tokens answer TOKEN_EXPIRED,
//     any other failure TOKEN_INVALID.
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// There is no refresh: an expired token always requires a fresh signin.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Presence ───────────────────────────────────────────────────
			if strings.TrimSpace(authHeader) == "" {
				respond.Error(writer, request, apperr.Unauthorized("Authorization header required"))
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], constants.AuthScheme) {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format, expected \"JWT <token>\""))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, sec.ErrTokenExpired) {
					respond.Error(writer, request, apperr.TokenExpired().WithCause(err))
					return
				}
				respond.Error(writer, request, apperr.TokenInvalid().WithCause(err))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
