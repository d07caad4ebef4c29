// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey names the values the Movie API middleware stores on a
// request context. Read them through ctxutil rather than directly.
package ctxkey

type key string

const (
	// KeyRequestID holds the X-Request-ID echoed on every response.
	KeyRequestID key = "request_id"

	// KeyUser holds the [sec.AuthClaims] set by the guard on /movies routes.
	KeyUser key = "user"

	// KeyLogger holds the request-scoped [*log/slog.Logger].
	KeyLogger key = "logger"
)
