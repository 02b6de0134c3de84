// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/deckboard/auth"
	"github.com/danielhkuo/deckboard/middleware"
	"github.com/danielhkuo/deckboard/models"
	"github.com/danielhkuo/deckboard/store"
)

type SessionHandler struct {
	store *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{store: st}
}

// Login handles POST /login
// Resolves the bearer identity to a user, creating it on first login. Profile
// fields in the body fill in claims the token lacks; the body may be empty.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.LoginRequest
	if r.ContentLength != 0 {
		if !parseBody(w, r, &req) {
			return
		}
	}

	email, name := id.Email, id.Name
	if email == "" {
		email = req.Email
	}
	if name == "" {
		name = req.Name
	}

	userID, err := h.store.Users.Resolve(r.Context(), id.Subject, email, name)
	if err != nil {
		writeStoreError(w, err, "Failed to log in")
		return
	}

	user, err := h.store.Users.Get(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Plan:   user.Plan,
	})
}

// GetPlan handles GET /plan
func (h *SessionHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := resolveUser(w, r, h.store.Users)
	if !ok {
		return
	}

	plan, err := h.store.Query.GetPlan(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "Failed to load plan")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PlanResponse{Plan: plan})
}
