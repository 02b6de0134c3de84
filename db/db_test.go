// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open(SQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn, SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func TestParseDialect(t *testing.T) {
	testCases := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"sqlite", SQLite, false},
		{"postgres", Postgres, false},
		{" Postgres ", Postgres, false},
		{"mysql", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDialect(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestOpenRequiresDSN(t *testing.T) {
	if _, err := Open(SQLite, "  "); err == nil {
		t.Error("Expected error for empty DSN")
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.db")
	conn, err := Open(SQLite, path)
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, SQLite); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	for _, table := range []string{"users", "tabs", "buttons"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}
}

func TestCreateSchemaUnknownDialect(t *testing.T) {
	d := openMemory(t)
	if err := CreateSchema(d, Dialect("oracle")); err == nil {
		t.Error("Expected error for unknown dialect")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	d := openMemory(t)

	_, err := d.Exec(`INSERT INTO users (external_id) VALUES ($1)`, "auth0|dup")
	if err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	_, err = d.Exec(`INSERT INTO users (external_id) VALUES ($1)`, "auth0|dup")
	if err == nil {
		t.Fatal("Expected duplicate insert to fail")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("Expected unique violation, got %v", err)
	}

	// Foreign key failures are constraint errors too, but not unique ones
	_, err = d.Exec(`INSERT INTO tabs (user_id, name) VALUES ($1, $2)`, 9999, "Orphan")
	if err == nil {
		t.Fatal("Expected foreign key violation")
	}
	if IsUniqueViolation(err) {
		t.Errorf("Foreign key violation reported as unique: %v", err)
	}

	if IsUniqueViolation(nil) {
		t.Error("nil error reported as unique violation")
	}
	if IsUniqueViolation(errors.New("UNIQUE constraint failed")) {
		t.Error("plain error reported as unique violation")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	d := openMemory(t)

	_, err := d.Exec(`INSERT INTO tabs (user_id, name) VALUES ($1, $2)`, 9999, "Orphan")
	if err == nil {
		t.Fatal("Expected foreign key violation")
	}
	if !IsForeignKeyViolation(err) {
		t.Errorf("Expected foreign key violation, got %v", err)
	}

	_, err = d.Exec(`INSERT INTO users (external_id) VALUES ($1)`, "auth0|dup")
	if err != nil {
		t.Fatalf("First insert failed: %v", err)
	}
	_, err = d.Exec(`INSERT INTO users (external_id) VALUES ($1)`, "auth0|dup")
	if IsForeignKeyViolation(err) {
		t.Errorf("Unique violation reported as foreign key: %v", err)
	}

	if IsForeignKeyViolation(nil) {
		t.Error("nil error reported as foreign key violation")
	}
	if IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")) {
		t.Error("plain error reported as foreign key violation")
	}
}
