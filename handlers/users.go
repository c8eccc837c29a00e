// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/skittles-scoresheet/auth"
	"github.com/danielhkuo/skittles-scoresheet/cliparse"
	"github.com/danielhkuo/skittles-scoresheet/middleware"
	"github.com/danielhkuo/skittles-scoresheet/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	var user models.User
	err := h.db.QueryRow(`
		SELECT id, username, password_hash, role, created_at
		FROM app_user
		WHERE username = $1
	`, req.Username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err == sql.ErrNoRows {
		auth.RejectPassword(req.Password)
		slog.Info("login rejected", "username", req.Username)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		slog.Info("login rejected", "username", req.Username)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	role := auth.RoleNone
	if user.Role != nil {
		role = auth.Role(*user.Role)
	}

	expiresAt := time.Now().Add(h.cfg.TokenTTL)
	token, err := auth.IssueToken(h.cfg.JWTSecret, user.ID, user.Username, role, h.cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "role", string(role))

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		Username:  user.Username,
		Role:      string(role),
		ExpiresAt: expiresAt,
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authorization header required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     string(claims.Role),
	})
}

// CreateUser handles POST /users (admin only)
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Username) < 2 || len(req.Username) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username must be 2-50 characters")
		return
	}
	if len(req.Password) < 8 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	// Only the named tiers can be granted; empty means a plain account
	var role *string
	if req.Role != "" {
		if !auth.Role(req.Role).Valid() {
			middleware.ErrorResponse(w, http.StatusBadRequest, "role must be one of: mod, admin")
			return
		}
		role = &req.Role
	}

	userID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate user ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO app_user (id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, req.Username, hash, role, time.Now().UTC())

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Username already taken")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	creator := ""
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		creator = claims.Subject
	}
	slog.Info("user created", "user_id", userID, "role", req.Role, "created_by", creator)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateUserResponse{
		UserID: userID,
	})
}

// isUniqueViolation matches the unique-constraint errors of both drivers
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
