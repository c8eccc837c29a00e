// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/skittles-scoresheet/auth"
)

// SeedAdmin creates an admin account if the username is not taken.
// Returns true when a new account was created.
func SeedAdmin(db *sql.DB, username, password string) (bool, error) {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM app_user WHERE username = $1)
	`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}
	if exists {
		return false, nil
	}

	userID, err := auth.GenerateID(16)
	if err != nil {
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	_, err = db.Exec(`
		INSERT INTO app_user (id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, username, hash, string(auth.RoleAdmin), time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to insert admin: %w", err)
	}

	return true, nil
}
