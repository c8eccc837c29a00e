// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// driverNames maps config database types to database/sql driver names
var driverNames = map[string]string{
	"postgres": "postgres",
	"sqlite":   "sqlite",
}

// sqlitePragmas are applied to every SQLite connection unless the URL
// already sets them
var sqlitePragmas = []struct {
	name  string
	value string
}{
	{"busy_timeout", "5000"},
	{"foreign_keys", "1"},
}

// Open connects to the configured database and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	driver, ok := driverNames[dbType]
	if !ok {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	if dbType == "sqlite" {
		url = sqliteURL(url)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// One writer at a time; writes queue in the pool
	if dbType == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

// sqliteURL appends the standard pragmas missing from url
func sqliteURL(url string) string {
	for _, p := range sqlitePragmas {
		if strings.Contains(url, "_pragma="+p.name+"(") {
			continue
		}
		sep := "&"
		if !strings.Contains(url, "?") {
			sep = "?"
		}
		url += sep + "_pragma=" + p.name + "(" + p.value + ")"
	}
	return url
}
