// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package db opens SQLite or PostgreSQL connections and creates the schema.
package db
