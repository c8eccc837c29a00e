// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/skittles-scoresheet/auth"
	"github.com/danielhkuo/skittles-scoresheet/cliparse"
	"github.com/danielhkuo/skittles-scoresheet/handlers"
	"github.com/danielhkuo/skittles-scoresheet/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	matchHandler := handlers.NewMatchHandler(db, cfg)

	// role wraps a handler with logging and a minimum role check
	role := func(minRole auth.Role, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireRole(cfg.JWTSecret, minRole, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(middleware.RequireLogin(cfg.JWTSecret, authHandler.Me)))
	mux.HandleFunc("POST /users", role(auth.RoleAdmin, authHandler.CreateUser))

	// Match data (public reads)
	mux.HandleFunc("GET /matches", role(auth.RoleNone, matchHandler.ListMatches))
	mux.HandleFunc("GET /matches/{id}", role(auth.RoleNone, matchHandler.GetMatch))
	mux.HandleFunc("GET /matches/{id}/scoresheet", role(auth.RoleNone, matchHandler.GetScoresheet))

	// Score entry
	mux.HandleFunc("POST /matches", role(auth.RoleMod, matchHandler.CreateMatch))
	mux.HandleFunc("PUT /matches/{id}/rounds", role(auth.RoleMod, matchHandler.RecordRounds))
	mux.HandleFunc("PUT /matches/{id}/rounds/{round}", role(auth.RoleMod, matchHandler.RecordRound))
	mux.HandleFunc("DELETE /matches/{id}", role(auth.RoleAdmin, matchHandler.DeleteMatch))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("skittles-scoresheet API v1"))
	})

	return mux
}
