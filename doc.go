// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the deckboard API server.

deckboard stores the button layout of a stream deck: each user owns named
tabs, and each tab holds buttons that trigger a streaming-software function
(switch a scene, toggle a source, play a sound).

# Starting the Server

The server reads environment variables (optionally from a .env file) or CLI
flags:

	DATABASE_URL=deckboard.db JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): HMAC secret used to verify bearer tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - JWT_ISSUER (-jwt-issuer): Required token issuer, if set
  - CORS_ORIGIN (-cors-origin): Allowed browser origin

# Architecture

  - handlers: HTTP request handlers (session, buttons, tabs)
  - store: Users, tabs, buttons and tree import on database/sql
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, identity, JSON helpers
  - auth: Bearer token verification
  - validation: Request body rules
  - metrics: Prometheus collectors
  - models: Request/response types
  - db: Connection, dialects and schema
  - cliparse: Configuration parsing
*/
package main
