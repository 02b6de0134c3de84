// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/deckboard/auth"
	"github.com/danielhkuo/deckboard/cliparse"
	"github.com/danielhkuo/deckboard/db"
)

// TestJWTSecret signs every token the tests issue
const TestJWTSecret = "test-jwt-secret"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupFileTestDB creates a database file under t.TempDir() with the full
// schema. Unlike SetupTestDB the pool holds several connections, so
// concurrent callers really interleave.
func SetupFileTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deckboard.db")
	conn, err := db.Open(db.SQLite, path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		t.Fatalf("Failed to open file test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetMaxOpenConns(8)

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		JWTSecret:    TestJWTSecret,
	}
}

// CreateTestUser inserts a user row directly and returns its internal id
func CreateTestUser(t *testing.T, db *sql.DB, externalID string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO users (external_id, email, name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, externalID, externalID+"@example.com", "Test User").Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestTab inserts a tab for the user and returns its id
func CreateTestTab(t *testing.T, db *sql.DB, userID int64, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO tabs (user_id, name)
		VALUES ($1, $2)
		RETURNING id
	`, userID, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test tab: %v", err)
	}

	return id
}

// AddTestButton inserts a button under the tab and returns its id
func AddTestButton(t *testing.T, db *sql.DB, tabID int64, function, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO buttons (tab_id, function_name, name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, tabID, function, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test button: %v", err)
	}

	return id
}

// CountTabs counts the tabs owned by a user
func CountTabs(t *testing.T, db *sql.DB, userID int64) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM tabs WHERE user_id = $1`, userID).Scan(&n); err != nil {
		t.Fatalf("Failed to count tabs: %v", err)
	}
	return n
}

// CountButtons counts the buttons across all tabs owned by a user
func CountButtons(t *testing.T, db *sql.DB, userID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM buttons b JOIN tabs t ON b.tab_id = t.id WHERE t.user_id = $1
	`, userID).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count buttons: %v", err)
	}
	return n
}

// TestToken issues a bearer token for the given subject
func TestToken(t *testing.T, subject string) string {
	t.Helper()

	token, err := auth.IssueToken([]byte(TestJWTSecret), "", auth.Identity{
		Subject: subject,
		Email:   subject + "@example.com",
		Name:    "Test " + subject,
	}, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// AuthHeaders returns the Authorization header for the given subject
func AuthHeaders(t *testing.T, subject string) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + TestToken(t, subject)}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
