// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging assigns an X-Request-ID, logs request start and completion with
slog, and records request count and latency by route pattern:

	mux.HandleFunc("GET /buttons", middleware.WithLogging(handler))

# Identity

RequireIdentity verifies the bearer token and puts the identity on the
request context. Failures get a 401 with a WWW-Authenticate header.

# CORS

CORS wraps the whole mux. With no configured origin it echoes the request
Origin; preflight requests are answered directly.

# JSON

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "tab \"Scenes\": not found")
	err := middleware.ParseJSONBody(r, &req)

ParseJSONBody rejects unknown fields.
*/
package middleware
