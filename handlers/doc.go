// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the skittles scoresheet API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: Login, session introspection and account creation
  - MatchHandler: Match entry, round results and the printed scoresheet

Handlers are created via constructor functions that accept *sql.DB and Config:

	matchHandler := handlers.NewMatchHandler(db, cfg)

# Accounts

	POST /auth/login → Login (returns a bearer token)
	GET /auth/me     → Me (any valid token)
	POST /users      → CreateUser (admin)

Roles are "mod", "admin" or none. Access checks live in middleware.RequireRole;
handlers read the caller from middleware.ClaimsFromContext.

# Match Lifecycle

A match is created with three players per side, then filled in round by round
or all at once:

	POST /matches                     → CreateMatch (mod)
	PUT /matches/{id}/rounds/{round}  → RecordRound (mod, round 0-8)
	PUT /matches/{id}/rounds          → RecordRounds (mod, exactly nine)
	DELETE /matches/{id}              → DeleteMatch (admin)

Reads are public:

	GET /matches                  → ListMatches (?team=, ?limit=)
	GET /matches/{id}             → GetMatch
	GET /matches/{id}/scoresheet  → GetScoresheet

# Scoresheet

GetScoresheet lays the nine rounds onto the 3x3 grid with scoregrid.Build.
Until all nine rounds are recorded it answers 409 Conflict.
*/
package handlers
