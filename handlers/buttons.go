// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/deckboard/middleware"
	"github.com/danielhkuo/deckboard/models"
	"github.com/danielhkuo/deckboard/store"
)

type ButtonHandler struct {
	store *store.Store
}

func NewButtonHandler(st *store.Store) *ButtonHandler {
	return &ButtonHandler{store: st}
}

// ListButtons handles GET /buttons
func (h *ButtonHandler) ListButtons(w http.ResponseWriter, r *http.Request) {
	userID, ok := resolveUser(w, r, h.store.Users)
	if !ok {
		return
	}

	buttons, err := h.store.Query.ListButtons(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "Failed to list buttons")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListButtonsResponse{Buttons: buttons})
}

// AddButton handles POST /tabs/{tab}/buttons
// The tab is created if this is its first button.
func (h *ButtonHandler) AddButton(w http.ResponseWriter, r *http.Request) {
	tabName, ok := tabParam(w, r)
	if !ok {
		return
	}

	var req models.AddButtonRequest
	if !parseBody(w, r, &req) {
		return
	}

	userID, ok := resolveUser(w, r, h.store.Users)
	if !ok {
		return
	}

	buttonID, err := h.store.Buttons.Add(r.Context(), userID, tabName, req.ButtonSpec)
	if err != nil {
		writeStoreError(w, err, "Failed to add button")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddButtonResponse{
		ButtonID: buttonID,
		TabName:  tabName,
	})
}

// UpdateButton handles PUT /tabs/{tab}/buttons/{id}
func (h *ButtonHandler) UpdateButton(w http.ResponseWriter, r *http.Request) {
	tabName, ok := tabParam(w, r)
	if !ok {
		return
	}
	buttonID, ok := buttonIDParam(w, r)
	if !ok {
		return
	}

	var req models.UpdateButtonRequest
	if !parseBody(w, r, &req) {
		return
	}

	userID, ok := resolveUser(w, r, h.store.Users)
	if !ok {
		return
	}

	if err := h.store.Buttons.Update(r.Context(), userID, tabName, buttonID, req.ButtonSpec); err != nil {
		writeStoreError(w, err, "Failed to update button")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Button updated"})
}

// RemoveButton handles DELETE /tabs/{tab}/buttons/{id}
// Succeeds even if the button was already gone. A tab left empty is pruned.
func (h *ButtonHandler) RemoveButton(w http.ResponseWriter, r *http.Request) {
	tabName, ok := tabParam(w, r)
	if !ok {
		return
	}
	buttonID, ok := buttonIDParam(w, r)
	if !ok {
		return
	}

	userID, ok := resolveUser(w, r, h.store.Users)
	if !ok {
		return
	}

	result, err := h.store.Buttons.Remove(r.Context(), userID, tabName, buttonID)
	if err != nil {
		writeStoreError(w, err, "Failed to remove button")
		return
	}

	// A failed prune is already logged by the store and is not the client's problem
	middleware.JSONResponse(w, http.StatusOK, models.RemoveButtonResponse{
		Deleted:   result.Deleted,
		TabPruned: result.TabPruned,
	})
}
