// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the scoresheet API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Authentication:

	POST /auth/login - Exchange username/password for a session token
	GET  /auth/me    - Claims of the current token (any logged-in user)
	POST /users      - Create a user (admin)

Match data (public):

	GET /matches                 - List matches, newest first (?team=, ?limit=)
	GET /matches/{id}            - Match with recorded rounds
	GET /matches/{id}/scoresheet - 3x3 scoresheet grid and totals

Score entry:

	POST   /matches                      - Create match (mod)
	PUT    /matches/{id}/rounds          - Replace all nine rounds (mod)
	PUT    /matches/{id}/rounds/{round}  - Set one round (mod)
	DELETE /matches/{id}                 - Delete match (admin)

Role-gated routes read "Authorization: Bearer <token>". Admin satisfies
any mod requirement.

# Handler Initialization

	authHandler := handlers.NewAuthHandler(db, cfg)
	matchHandler := handlers.NewMatchHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
