// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/deckboard/middleware"
	"github.com/danielhkuo/deckboard/models"
	"github.com/danielhkuo/deckboard/store"
)

type TabHandler struct {
	store *store.Store
}

func NewTabHandler(st *store.Store) *TabHandler {
	return &TabHandler{store: st}
}

// ListTabs handles GET /tabs
func (h *TabHandler) ListTabs(w http.ResponseWriter, r *http.Request) {
	userID, ok := resolveUser(w, r, h.store.Users)
	if !ok {
		return
	}

	tabs, err := h.store.Query.ListTabs(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "Failed to list tabs")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListTabsResponse{Tabs: tabs})
}

// DeleteTab handles DELETE /tabs/{tab}
// Removes the tab together with all of its buttons.
func (h *TabHandler) DeleteTab(w http.ResponseWriter, r *http.Request) {
	tabName, ok := tabParam(w, r)
	if !ok {
		return
	}

	userID, ok := resolveUser(w, r, h.store.Users)
	if !ok {
		return
	}

	if err := h.store.Tabs.Delete(r.Context(), userID, tabName); err != nil {
		writeStoreError(w, err, "Failed to delete tab")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Tab deleted"})
}

// ImportTabs handles PUT /tabs
// Replaces the caller's entire tab/button tree with the request body.
func (h *TabHandler) ImportTabs(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if !parseBody(w, r, &req) {
		return
	}

	userID, ok := resolveUser(w, r, h.store.Users)
	if !ok {
		return
	}

	result, err := h.store.Import.Import(r.Context(), userID, req.Tabs)
	if err != nil {
		writeStoreError(w, err, "Failed to import tabs")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{
		Tabs:    result.Tabs,
		Buttons: result.Buttons,
	})
}
