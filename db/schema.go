// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	var ddl string
	switch dialect {
	case Postgres:
		ddl = postgresSchema
	case SQLite:
		ddl = sqliteSchema
	default:
		return fmt.Errorf("failed to create schema: unknown dialect %q", dialect)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    external_id TEXT NOT NULL UNIQUE,
    email TEXT,
    name TEXT NOT NULL DEFAULT '',
    plan TEXT DEFAULT 'free',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Tabs
CREATE TABLE IF NOT EXISTS tabs (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    UNIQUE (user_id, name)
);

CREATE INDEX IF NOT EXISTS idx_tabs_user_id ON tabs(user_id);

-- Buttons
CREATE TABLE IF NOT EXISTS buttons (
    id BIGSERIAL PRIMARY KEY,
    tab_id BIGINT NOT NULL REFERENCES tabs(id) ON DELETE CASCADE,
    function_name TEXT NOT NULL,
    image TEXT,
    name TEXT,
    scene TEXT,
    scene_collection TEXT,
    profile TEXT,
    sound TEXT,
    scene_item TEXT,
    scene_item_function TEXT
);

CREATE INDEX IF NOT EXISTS idx_buttons_tab_id ON buttons(tab_id);
`

const sqliteSchema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    external_id TEXT NOT NULL UNIQUE,
    email TEXT,
    name TEXT NOT NULL DEFAULT '',
    plan TEXT DEFAULT 'free',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Tabs
CREATE TABLE IF NOT EXISTS tabs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    UNIQUE (user_id, name)
);

CREATE INDEX IF NOT EXISTS idx_tabs_user_id ON tabs(user_id);

-- Buttons
CREATE TABLE IF NOT EXISTS buttons (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tab_id INTEGER NOT NULL REFERENCES tabs(id) ON DELETE CASCADE,
    function_name TEXT NOT NULL,
    image TEXT,
    name TEXT,
    scene TEXT,
    scene_collection TEXT,
    profile TEXT,
    sound TEXT,
    scene_item TEXT,
    scene_item_function TEXT
);

CREATE INDEX IF NOT EXISTS idx_buttons_tab_id ON buttons(tab_id);
`
