// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and seeding.

# Connecting

Open picks the driver from the configured type and pings before returning:

	conn, err := db.Open("postgres", "postgres://...")
	conn, err := db.Open("sqlite", "file:scores.db?_pragma=foreign_keys(1)")

PostgreSQL uses github.com/lib/pq; SQLite uses the pure-Go modernc.org/sqlite.
Queries use $N placeholders, which both drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: login accounts with bcrypt hash and optional role (mod, admin)
  - league_match: teams, three players per side, date played
  - match_round: nine rounds per match, keyed by (match_id, round_index)

# Relationships

	app_user 1──* league_match (created_by, not enforced)
	league_match 1──* match_round (CASCADE)

# Seeding

SeedAdmin creates the bootstrap admin account when it does not exist:

	created, err := db.SeedAdmin(conn, "admin", "secret")
*/
package db
