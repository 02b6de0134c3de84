// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/deckboard/db"
	"github.com/danielhkuo/deckboard/metrics"
)

// TabStore owns the named tab groupings of each user.
type TabStore struct {
	db *sql.DB
}

func NewTabStore(db *sql.DB) *TabStore {
	return &TabStore{db: db}
}

// Lookup returns the id of the tab (userID, name), or ErrNotFound.
func (s *TabStore) Lookup(ctx context.Context, userID int64, name string) (int64, error) {
	return lookupTab(ctx, s.db, userID, name)
}

// ResolveOrCreate returns the id of tab (userID, name), inserting it if absent.
// Two requests racing on the same unseen name both end up with the single row
// the UNIQUE(user_id, name) constraint lets through.
func (s *TabStore) ResolveOrCreate(ctx context.Context, userID int64, name string) (int64, error) {
	id, err := s.Lookup(ctx, userID, name)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return id, err
	}

	exists, err := userExists(ctx, s.db, userID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	id, err = s.insert(ctx, userID, name)
	if err == nil {
		slog.Info("tab created", "user_id", userID, "tab", name, "tab_id", id)
		return id, nil
	}
	if !errors.Is(err, errConflictRetry) {
		return 0, err
	}

	// Someone else created it between our lookup and insert
	metrics.TabConflicts.Inc()
	slog.Debug("tab create conflict, re-reading", "user_id", userID, "tab", name)

	id, err = s.Lookup(ctx, userID, name)
	if errors.Is(err, ErrNotFound) {
		return 0, fmt.Errorf("tab %q unreadable after conflicting insert: %w", name, ErrNotFound)
	}
	return id, err
}

func (s *TabStore) insert(ctx context.Context, userID int64, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tabs (user_id, name)
		VALUES ($1, $2)
		RETURNING id
	`, userID, name).Scan(&id)
	if db.IsUniqueViolation(err) {
		return 0, errConflictRetry
	}
	if err != nil {
		return 0, storageErr("insert tab", err)
	}
	return id, nil
}

// Delete removes the tab and every button under it.
func (s *TabStore) Delete(ctx context.Context, userID int64, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin delete tab", err)
	}
	defer tx.Rollback()

	tabID, err := lookupTab(ctx, tx, userID, name)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM buttons WHERE tab_id = $1`, tabID)
	if err != nil {
		return storageErr("delete tab buttons", err)
	}
	buttons, _ := res.RowsAffected()

	_, err = tx.ExecContext(ctx, `DELETE FROM tabs WHERE id = $1 AND user_id = $2`, tabID, userID)
	if err != nil {
		return storageErr("delete tab", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit delete tab", err)
	}

	slog.Info("tab deleted", "user_id", userID, "tab", name, "buttons", buttons)
	return nil
}

// PruneIfEmpty deletes the tab if it owns no buttons. The check and the
// delete are one statement, so a button added concurrently keeps the tab.
func (s *TabStore) PruneIfEmpty(ctx context.Context, tabID, userID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM tabs
		WHERE id = $1 AND user_id = $2
		  AND NOT EXISTS (SELECT 1 FROM buttons WHERE tab_id = $3)
	`, tabID, userID, tabID)
	if err != nil {
		return false, storageErr("prune tab", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("prune tab", err)
	}
	if n > 0 {
		metrics.TabsPruned.Inc()
		slog.Info("empty tab pruned", "user_id", userID, "tab_id", tabID)
	}
	return n > 0, nil
}

func lookupTab(ctx context.Context, q querier, userID int64, name string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
		SELECT id FROM tabs WHERE user_id = $1 AND name = $2
	`, userID, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("tab %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return 0, storageErr("lookup tab", err)
	}
	return id, nil
}
