// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/deckboard/models"
)

// QueryStore is the read side: joins that never mutate.
type QueryStore struct {
	db *sql.DB
}

func NewQueryStore(db *sql.DB) *QueryStore {
	return &QueryStore{db: db}
}

// ListButtons returns every button in every tab the user owns, ordered by
// tab name and then button id.
func (s *QueryStore) ListButtons(ctx context.Context, userID int64) ([]models.ButtonView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.tab_id, t.name, b.function_name, b.image, b.name, b.scene,
		       b.scene_collection, b.profile, b.sound, b.scene_item, b.scene_item_function
		FROM buttons b
		JOIN tabs t ON b.tab_id = t.id
		WHERE t.user_id = $1
		ORDER BY t.name, b.id
	`, userID)
	if err != nil {
		return nil, storageErr("list buttons", err)
	}
	defer rows.Close()

	buttons := []models.ButtonView{}
	for rows.Next() {
		var v models.ButtonView
		if err := rows.Scan(
			&v.ID, &v.TabID, &v.TabName, &v.Function, &v.Image, &v.Name, &v.Scene,
			&v.SceneCollection, &v.Profile, &v.Sound, &v.SceneItem, &v.SceneItemFunction,
		); err != nil {
			return nil, storageErr("scan button", err)
		}
		buttons = append(buttons, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list buttons", err)
	}

	return buttons, nil
}

// ListTabs returns the user's tabs with their button counts, ordered by name.
func (s *QueryStore) ListTabs(ctx context.Context, userID int64) ([]models.Tab, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.user_id, t.name, COUNT(b.id)
		FROM tabs t
		LEFT JOIN buttons b ON b.tab_id = t.id
		WHERE t.user_id = $1
		GROUP BY t.id, t.user_id, t.name
		ORDER BY t.name
	`, userID)
	if err != nil {
		return nil, storageErr("list tabs", err)
	}
	defer rows.Close()

	tabs := []models.Tab{}
	for rows.Next() {
		var tab models.Tab
		if err := rows.Scan(&tab.ID, &tab.UserID, &tab.Name, &tab.ButtonCount); err != nil {
			return nil, storageErr("scan tab", err)
		}
		tabs = append(tabs, tab)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list tabs", err)
	}

	return tabs, nil
}

// GetPlan returns the user's stored plan identifier.
func (s *QueryStore) GetPlan(ctx context.Context, userID int64) (string, error) {
	var plan sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT plan FROM users WHERE id = $1
	`, userID).Scan(&plan)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return "", storageErr("get plan", err)
	}
	if !plan.Valid {
		return "", fmt.Errorf("plan for user %d: %w", userID, ErrNotFound)
	}
	return plan.String, nil
}
