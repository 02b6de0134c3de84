// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/deckboard/auth"
	"github.com/danielhkuo/deckboard/cliparse"
	"github.com/danielhkuo/deckboard/handlers"
	"github.com/danielhkuo/deckboard/metrics"
	"github.com/danielhkuo/deckboard/middleware"
	"github.com/danielhkuo/deckboard/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db)
	verifier := auth.NewJWTVerifier([]byte(cfg.JWTSecret), cfg.JWTIssuer)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(st)
	buttonHandler := handlers.NewButtonHandler(st)
	tabHandler := handlers.NewTabHandler(st)

	// authed wraps a handler with logging and bearer-token verification
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireIdentity(verifier, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Session
	mux.HandleFunc("POST /login", authed(sessionHandler.Login))
	mux.HandleFunc("GET /plan", authed(sessionHandler.GetPlan))

	// Read side
	mux.HandleFunc("GET /buttons", authed(buttonHandler.ListButtons))
	mux.HandleFunc("GET /tabs", authed(tabHandler.ListTabs))

	// Button mutations, scoped to a tab
	mux.HandleFunc("POST /tabs/{tab}/buttons", authed(buttonHandler.AddButton))
	mux.HandleFunc("PUT /tabs/{tab}/buttons/{id}", authed(buttonHandler.UpdateButton))
	mux.HandleFunc("DELETE /tabs/{tab}/buttons/{id}", authed(buttonHandler.RemoveButton))

	// Tab mutations
	mux.HandleFunc("DELETE /tabs/{tab}", authed(tabHandler.DeleteTab))
	mux.HandleFunc("PUT /tabs", authed(tabHandler.ImportTabs))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("deckboard API v1"))
	})

	return mux
}
