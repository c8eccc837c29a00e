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

	"github.com/danielhkuo/skittles-scoresheet/auth"
	"github.com/danielhkuo/skittles-scoresheet/cliparse"
	"github.com/danielhkuo/skittles-scoresheet/db"
	"github.com/danielhkuo/skittles-scoresheet/scoregrid"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The file lives in t.TempDir and is removed with it. It is opened exactly
// as the server opens DATABASE_URL.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: "sqlite",
		JWTSecret:    "test-jwt-secret",
		TokenTTL:     time.Hour,
	}
}

// CreateTestUser inserts a user and returns its ID.
// role may be "" for an account without privileges.
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string, role auth.Role) string {
	t.Helper()

	userID, _ := auth.GenerateID(16)
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	var roleValue *string
	if role != auth.RoleNone {
		s := string(role)
		roleValue = &s
	}

	_, err = conn.Exec(`
		INSERT INTO app_user (id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, username, hash, roleValue, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// TokenFor issues a session token for the given role
func TokenFor(t *testing.T, cfg cliparse.Config, userID string, role auth.Role) string {
	t.Helper()

	token, err := auth.IssueToken(cfg.JWTSecret, userID, "user-"+userID, role, cfg.TokenTTL)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

// BearerHeader builds the Authorization header map for MakeRequest
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// CreateTestMatch inserts a match without rounds and returns its ID
func CreateTestMatch(t *testing.T, conn *sql.DB, homeTeam, awayTeam string, playedAt time.Time) string {
	t.Helper()

	matchID, _ := auth.GenerateID(16)
	_, err := conn.Exec(`
		INSERT INTO league_match (id, home_team, away_team,
			home_player1, home_player2, home_player3,
			away_player1, away_player2, away_player3,
			played_at, created_at)
		VALUES ($1, $2, $3, 'Alice', 'Bob', 'Carol', 'Xavier', 'Yusuf', 'Zoe', $4, $5)
	`, matchID, homeTeam, awayTeam, playedAt.UTC(), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test match: %v", err)
	}

	return matchID
}

// AddTestRounds records rounds 0..len(rounds)-1 for a match
func AddTestRounds(t *testing.T, conn *sql.DB, matchID string, rounds []scoregrid.WinPair) {
	t.Helper()

	for i, p := range rounds {
		_, err := conn.Exec(`
			INSERT INTO match_round (match_id, round_index, home_wins, away_wins)
			VALUES ($1, $2, $3, $4)
		`, matchID, i, p.Home, p.Away)
		if err != nil {
			t.Fatalf("Failed to create test round: %v", err)
		}
	}
}

// NineRounds returns distinct rounds: round k is (k, 10+k)
func NineRounds() []scoregrid.WinPair {
	rounds := make([]scoregrid.WinPair, scoregrid.Rounds)
	for k := range rounds {
		rounds[k] = scoregrid.WinPair{Home: k, Away: 10 + k}
	}
	return rounds
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
