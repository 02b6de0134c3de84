// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/deckboard/metrics"
	"github.com/danielhkuo/deckboard/models"
)

// Importer replaces a user's whole tab/button tree from a client snapshot.
type Importer struct {
	db *sql.DB
}

func NewImporter(db *sql.DB) *Importer {
	return &Importer{db: db}
}

type ImportResult struct {
	Tabs    int
	Buttons int
}

// Import deletes every tab the user owns and rebuilds the tree from tabs, in
// order, inside one transaction. If anything fails the previous tree is left
// exactly as it was.
func (im *Importer) Import(ctx context.Context, userID int64, tabs []models.TabTree) (ImportResult, error) {
	result, err := im.replace(ctx, userID, tabs)
	if err != nil {
		metrics.Imports.WithLabelValues("failed").Inc()
		return ImportResult{}, err
	}

	metrics.Imports.WithLabelValues("committed").Inc()
	slog.Info("import committed", "user_id", userID, "tabs", result.Tabs, "buttons", result.Buttons)
	return result, nil
}

func (im *Importer) replace(ctx context.Context, userID int64, tabs []models.TabTree) (ImportResult, error) {
	var result ImportResult

	tx, err := im.db.BeginTx(ctx, nil)
	if err != nil {
		return result, storageErr("begin import", err)
	}
	defer tx.Rollback()

	exists, err := userExists(ctx, tx, userID)
	if err != nil {
		return result, err
	}
	if !exists {
		return result, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM buttons
		WHERE tab_id IN (SELECT id FROM tabs WHERE user_id = $1)
	`, userID)
	if err != nil {
		return result, storageErr("clear buttons", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM tabs WHERE user_id = $1`, userID)
	if err != nil {
		return result, storageErr("clear tabs", err)
	}

	for _, tab := range tabs {
		var tabID int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO tabs (user_id, name)
			VALUES ($1, $2)
			RETURNING id
		`, userID, tab.Name).Scan(&tabID)
		if err != nil {
			return ImportResult{}, storageErr(fmt.Sprintf("insert tab %q", tab.Name), err)
		}
		result.Tabs++

		for i, spec := range tab.Buttons {
			if _, err := insertButton(ctx, tx, tabID, spec); err != nil {
				return ImportResult{}, storageErr(fmt.Sprintf("insert button %d of tab %q", i, tab.Name), err)
			}
			result.Buttons++
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, storageErr("commit import", err)
	}
	return result, nil
}
