// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/deckboard/auth"
	"github.com/danielhkuo/deckboard/middleware"
	"github.com/danielhkuo/deckboard/store"
	"github.com/danielhkuo/deckboard/validation"
)

// resolveUser maps the verified identity on the request to an internal user
// id, creating the user on first sight. On failure it has already written the
// response and returns false.
func resolveUser(w http.ResponseWriter, r *http.Request, users *store.UserStore) (int64, bool) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return 0, false
	}

	userID, err := users.Resolve(r.Context(), id.Subject, id.Email, id.Name)
	if err != nil {
		writeStoreError(w, err, "Failed to resolve user")
		return 0, false
	}
	return userID, true
}

// writeStoreError maps core errors to HTTP responses. Not-found messages name
// only what the caller asked for; storage details stay in the log and the
// client sees fallback.
func writeStoreError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrIdentity):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid identity")
	default:
		slog.Error(strings.ToLower(fallback), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}

// parseBody decodes and validates a JSON request body. On failure it has
// already written a 400 and returns false.
func parseBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := middleware.ParseJSONBody(r, v); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	if err := validation.Struct(v); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// tabParam returns the {tab} path value, writing a 400 if it is blank or too long
func tabParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := r.PathValue("tab")
	if strings.TrimSpace(name) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tab name is required")
		return "", false
	}
	if len(name) > 100 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tab name must be at most 100 characters")
		return "", false
	}
	return name, true
}

// buttonIDParam parses the {id} path value as a positive integer
func buttonIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "button id must be a positive integer")
		return 0, false
	}
	return id, true
}
