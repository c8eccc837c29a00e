// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the skittles scoresheet API server.

The server records league skittles matches (three players a side, nine
rounds) and serves each match as a 3x3 scoresheet. League officials log in
with a username and password; mods enter scores, admins also manage users
and delete matches.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:scores.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 3318 -d "postgres://..." -t postgres --jwt-secret ...

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file URL or PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): Session token signing secret

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL (--token-ttl): Session lifetime (default: 12h)
  - ADMIN_USERNAME / ADMIN_PASSWORD: Seed an admin account on startup

# Architecture

  - scoregrid: Round-to-grid scoresheet layout
  - handlers: HTTP request handlers (auth, users, matches)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, CORS, role checks, JSON helpers
  - models: Request/response types
  - auth: Roles, password hashing, session tokens
  - db: Connections, schema, admin seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
