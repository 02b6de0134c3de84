// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"

	"github.com/danielhkuo/deckboard/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles the core components over a single database handle.
type Store struct {
	Users   *UserStore
	Tabs    *TabStore
	Buttons *ButtonStore
	Import  *Importer
	Query   *QueryStore
}

func New(db *sql.DB) *Store {
	tabs := NewTabStore(db)
	return &Store{
		Users:   NewUserStore(db),
		Tabs:    tabs,
		Buttons: NewButtonStore(db, tabs),
		Import:  NewImporter(db),
		Query:   NewQueryStore(db),
	}
}

// userExists reports whether a user row with the given id is present.
func userExists(ctx context.Context, q querier, userID int64) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)
	`, userID).Scan(&exists)
	if err != nil {
		return false, storageErr("check user", err)
	}
	return exists, nil
}

// insertButton inserts one button row under tabID and returns the generated id.
func insertButton(ctx context.Context, q querier, tabID int64, spec models.ButtonSpec) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO buttons (tab_id, function_name, image, name, scene, scene_collection,
		                     profile, sound, scene_item, scene_item_function)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, append([]any{tabID}, specArgs(spec)...)...).Scan(&id)
	return id, err
}

// specArgs flattens a ButtonSpec in column order: function_name, image, name,
// scene, scene_collection, profile, sound, scene_item, scene_item_function.
func specArgs(spec models.ButtonSpec) []any {
	return []any{
		spec.Function, nullable(spec.Image), nullable(spec.Name), nullable(spec.Scene),
		nullable(spec.SceneCollection), nullable(spec.Profile), nullable(spec.Sound),
		nullable(spec.SceneItem), nullable(spec.SceneItemFunction),
	}
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
