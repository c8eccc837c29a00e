// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var schema = []string{
	// Users
	`CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,

	// Matches
	`CREATE TABLE IF NOT EXISTS league_match (
    id TEXT PRIMARY KEY,
    home_team TEXT NOT NULL,
    away_team TEXT NOT NULL,
    home_player1 TEXT NOT NULL,
    home_player2 TEXT NOT NULL,
    home_player3 TEXT NOT NULL,
    away_player1 TEXT NOT NULL,
    away_player2 TEXT NOT NULL,
    away_player3 TEXT NOT NULL,
    played_at TIMESTAMP NOT NULL,
    created_by TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_match_played_at ON league_match(played_at)`,

	// Rounds
	`CREATE TABLE IF NOT EXISTS match_round (
    match_id TEXT NOT NULL REFERENCES league_match(id) ON DELETE CASCADE,
    round_index INTEGER NOT NULL CHECK (round_index >= 0 AND round_index <= 8),
    home_wins INTEGER NOT NULL CHECK (home_wins >= 0),
    away_wins INTEGER NOT NULL CHECK (away_wins >= 0),
    PRIMARY KEY (match_id, round_index)
)`,
	`CREATE INDEX IF NOT EXISTS idx_match_round_match_id ON match_round(match_id)`,
}
