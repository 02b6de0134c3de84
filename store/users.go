// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danielhkuo/deckboard/models"
)

const maxExternalIDLen = 255

// UserStore maps external auth identities to internal user records.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Resolve returns the internal id for externalID, creating the user on first
// sight. Email and name are only written on creation; later logins never
// update them.
func (s *UserStore) Resolve(ctx context.Context, externalID, email, name string) (int64, error) {
	externalID, err := normalizeExternalID(externalID)
	if err != nil {
		return 0, err
	}

	var emailArg any
	if email != "" {
		emailArg = email
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (external_id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (external_id) DO NOTHING
		RETURNING id
	`, externalID, emailArg, name).Scan(&id)

	switch {
	case err == nil:
		slog.Info("user created", "user_id", id)
		return id, nil
	case errors.Is(err, sql.ErrNoRows):
		// Already known: the insert was a no-op
	default:
		return 0, storageErr("insert user", err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT id FROM users WHERE external_id = $1
	`, externalID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("user %q vanished after conflict: %w", externalID, ErrNotFound)
	}
	if err != nil {
		return 0, storageErr("select user", err)
	}

	return id, nil
}

// Get loads a user by internal id.
func (s *UserStore) Get(ctx context.Context, userID int64) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, external_id, email, name, plan
		FROM users
		WHERE id = $1
	`, userID).Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.Plan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return models.User{}, storageErr("get user", err)
	}
	return u, nil
}

func normalizeExternalID(externalID string) (string, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return "", fmt.Errorf("external id is empty: %w", ErrIdentity)
	}
	if len(externalID) > maxExternalIDLen {
		return "", fmt.Errorf("external id longer than %d bytes: %w", maxExternalIDLen, ErrIdentity)
	}
	if !utf8.ValidString(externalID) {
		return "", fmt.Errorf("external id is not valid UTF-8: %w", ErrIdentity)
	}
	if strings.IndexFunc(externalID, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("external id contains control characters: %w", ErrIdentity)
	}
	return externalID, nil
}
