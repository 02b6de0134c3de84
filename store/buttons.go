// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/deckboard/db"
	"github.com/danielhkuo/deckboard/metrics"
	"github.com/danielhkuo/deckboard/models"
)

// ButtonStore mutates buttons. Every write is scoped by a tab id that was
// looked up through the caller's user id, so a user can never touch another
// user's buttons.
type ButtonStore struct {
	db   *sql.DB
	tabs *TabStore
}

func NewButtonStore(db *sql.DB, tabs *TabStore) *ButtonStore {
	return &ButtonStore{db: db, tabs: tabs}
}

// maxAddAttempts bounds how often Add re-resolves a tab pruned under it.
const maxAddAttempts = 2

// RemoveResult describes what Remove did. PruneErr is set when the button was
// deleted but the follow-up prune of its tab failed; the deletion stands.
type RemoveResult struct {
	Deleted   bool
	TabPruned bool
	PruneErr  error
}

// Add creates a button in tabName, creating the tab if this is its first button.
func (s *ButtonStore) Add(ctx context.Context, userID int64, tabName string, spec models.ButtonSpec) (int64, error) {
	var id int64
	for attempt := 1; ; attempt++ {
		tabID, err := s.tabs.ResolveOrCreate(ctx, userID, tabName)
		if err != nil {
			return 0, err
		}

		id, err = insertButton(ctx, s.db, tabID, spec)
		if err == nil {
			break
		}
		// The tab was pruned between resolve and insert; resolve it again once
		if attempt < maxAddAttempts && db.IsForeignKeyViolation(err) {
			slog.Debug("tab vanished before button insert, retrying", "user_id", userID, "tab", tabName, "tab_id", tabID)
			continue
		}
		return 0, storageErr("insert button", err)
	}

	metrics.ButtonMutations.WithLabelValues("add").Inc()
	slog.Info("button added", "user_id", userID, "tab", tabName, "button_id", id)
	return id, nil
}

// Update overwrites every attribute of the button. A button id that is not
// under tabName for this user is ErrNotFound.
func (s *ButtonStore) Update(ctx context.Context, userID int64, tabName string, buttonID int64, spec models.ButtonSpec) error {
	tabID, err := s.tabs.Lookup(ctx, userID, tabName)
	if err != nil {
		return err
	}

	args := append(specArgs(spec), buttonID, tabID)
	res, err := s.db.ExecContext(ctx, `
		UPDATE buttons
		SET function_name = $1, image = $2, name = $3, scene = $4, scene_collection = $5,
		    profile = $6, sound = $7, scene_item = $8, scene_item_function = $9
		WHERE id = $10 AND tab_id = $11
	`, args...)
	if err != nil {
		return storageErr("update button", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("update button", err)
	}
	if n == 0 {
		return fmt.Errorf("button %d in tab %q: %w", buttonID, tabName, ErrNotFound)
	}

	metrics.ButtonMutations.WithLabelValues("update").Inc()
	slog.Info("button updated", "user_id", userID, "tab", tabName, "button_id", buttonID)
	return nil
}

// Remove deletes the button and prunes its tab if that left it empty.
// Deleting a button that is already gone still succeeds.
func (s *ButtonStore) Remove(ctx context.Context, userID int64, tabName string, buttonID int64) (RemoveResult, error) {
	var result RemoveResult

	tabID, err := s.tabs.Lookup(ctx, userID, tabName)
	if err != nil {
		return result, err
	}

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM buttons WHERE tab_id = $1 AND id = $2
	`, tabID, buttonID)
	if err != nil {
		return result, storageErr("delete button", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		result.Deleted = true
		metrics.ButtonMutations.WithLabelValues("remove").Inc()
	}

	pruned, err := s.tabs.PruneIfEmpty(ctx, tabID, userID)
	if err != nil {
		slog.Warn("failed to prune tab after button delete",
			"user_id", userID, "tab_id", tabID, "error", err)
		result.PruneErr = err
	}
	result.TabPruned = pruned

	slog.Info("button removed", "user_id", userID, "tab", tabName, "button_id", buttonID,
		"deleted", result.Deleted, "tab_pruned", result.TabPruned)
	return result, nil
}
