// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p, --port           Server port (default: 3318)
	-d, --database-url   Database URL
	-t, --database-type  sqlite or postgres (default: sqlite)
	    --jwt-secret     Session token signing secret
	    --token-ttl      Session token lifetime (default: 12h)

# Environment Variables

Flags fall back to environment variables:

	PORT          → --port
	DATABASE_URL  → --database-url
	DATABASE_TYPE → --database-type
	JWT_SECRET    → --jwt-secret
	TOKEN_TTL     → --token-ttl

ADMIN_USERNAME and ADMIN_PASSWORD are env-only. When both are set the
server seeds that admin account on startup.

CLI flags take precedence over environment variables. main loads a .env
file first, so values there behave like real environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - JWT_SECRET is missing
  - the database type is not sqlite or postgres
  - only one of ADMIN_USERNAME / ADMIN_PASSWORD is set
*/
package cliparse
