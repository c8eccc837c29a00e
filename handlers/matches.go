// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/skittles-scoresheet/auth"
	"github.com/danielhkuo/skittles-scoresheet/cliparse"
	"github.com/danielhkuo/skittles-scoresheet/middleware"
	"github.com/danielhkuo/skittles-scoresheet/models"
	"github.com/danielhkuo/skittles-scoresheet/scoregrid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type MatchHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMatchHandler(db *sql.DB, cfg cliparse.Config) *MatchHandler {
	return &MatchHandler{db: db, cfg: cfg}
}

// ListMatches handles GET /matches
// Optional query: team (home or away name), limit
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxListLimit)
	}

	query := `
		SELECT m.id, m.home_team, m.away_team, m.played_at,
		       COUNT(r.round_index),
		       COALESCE(SUM(r.home_wins), 0),
		       COALESCE(SUM(r.away_wins), 0)
		FROM league_match m
		LEFT JOIN match_round r ON r.match_id = m.id`
	args := []interface{}{}

	if team := r.URL.Query().Get("team"); team != "" {
		query += `
		WHERE m.home_team = $1 OR m.away_team = $1`
		args = append(args, team)
	}

	query += `
		GROUP BY m.id, m.home_team, m.away_team, m.played_at
		ORDER BY m.played_at DESC, m.id
		LIMIT ` + strconv.Itoa(limit)

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query matches", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	matches := []models.MatchSummary{}
	for rows.Next() {
		var m models.MatchSummary
		if err := rows.Scan(&m.ID, &m.HomeTeam, &m.AwayTeam, &m.PlayedAt,
			&m.RoundsPlayed, &m.HomeTotal, &m.AwayTotal); err != nil {
			slog.Error("failed to scan match", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate matches", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, matches)
}

// GetMatch handles GET /matches/{id}
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	if matchID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	match, err := getMatch(h.db, matchID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		slog.Error("failed to load match", "error", err, "match_id", matchID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, match)
}

// GetScoresheet handles GET /matches/{id}/scoresheet
// Returns 409 until all nine rounds are recorded
func (h *MatchHandler) GetScoresheet(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	if matchID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	match, err := getMatch(h.db, matchID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		slog.Error("failed to load match", "error", err, "match_id", matchID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	grid, err := scoregrid.Build(winPairs(match.Rounds), match.HomePlayers, match.AwayPlayers)
	var shapeErr *scoregrid.InvalidShapeError
	if errors.As(err, &shapeErr) {
		middleware.ErrorResponse(w, http.StatusConflict, "Scoresheet incomplete: "+shapeErr.Error())
		return
	}
	if err != nil {
		slog.Error("failed to build scoresheet", "error", err, "match_id", matchID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build scoresheet")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScoresheetResponse{
		MatchID:     match.ID,
		HomeTeam:    match.HomeTeam,
		AwayTeam:    match.AwayTeam,
		HomePlayers: match.HomePlayers,
		AwayPlayers: match.AwayPlayers,
		Grid:        grid.Rows(),
		Totals:      grid.Totals(),
	})
}

// CreateMatch handles POST /matches (mod or above)
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.HomeTeam == "" || req.AwayTeam == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "home_team and away_team are required")
		return
	}
	if !validPlayers(req.HomePlayers) || !validPlayers(req.AwayPlayers) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "each side needs exactly 3 named players")
		return
	}

	playedAt := req.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	matchID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate match ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create match")
		return
	}

	var createdBy *string
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		createdBy = &claims.Subject
	}

	_, err = h.db.Exec(`
		INSERT INTO league_match (id, home_team, away_team,
			home_player1, home_player2, home_player3,
			away_player1, away_player2, away_player3,
			played_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, matchID, req.HomeTeam, req.AwayTeam,
		req.HomePlayers[0], req.HomePlayers[1], req.HomePlayers[2],
		req.AwayPlayers[0], req.AwayPlayers[1], req.AwayPlayers[2],
		playedAt.UTC(), createdBy, time.Now().UTC())

	if err != nil {
		slog.Error("failed to insert match", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create match")
		return
	}

	slog.Info("match created", "match_id", matchID, "home", req.HomeTeam, "away", req.AwayTeam)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateMatchResponse{
		MatchID: matchID,
	})
}

// RecordRounds handles PUT /matches/{id}/rounds (mod or above)
// Replaces every round of the match with the nine submitted
func (h *MatchHandler) RecordRounds(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	if matchID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	var req models.RecordRoundsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Rounds) != scoregrid.Rounds {
		middleware.ErrorResponse(w, http.StatusBadRequest, "exactly 9 rounds are required")
		return
	}
	for _, p := range req.Rounds {
		if p.Home < 0 || p.Away < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "wins cannot be negative")
			return
		}
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Checked under the same transaction as the writes
	exists, err := matchExists(tx, matchID, h.lockRows())
	if err != nil {
		slog.Error("failed to query match", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}

	if _, err := tx.Exec(`DELETE FROM match_round WHERE match_id = $1`, matchID); err != nil {
		slog.Error("failed to delete old rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record rounds")
		return
	}

	for i, p := range req.Rounds {
		_, err := tx.Exec(`
			INSERT INTO match_round (match_id, round_index, home_wins, away_wins)
			VALUES ($1, $2, $3, $4)
		`, matchID, i, p.Home, p.Away)
		if err != nil {
			slog.Error("failed to insert round", "error", err, "round", i)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record rounds")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record rounds")
		return
	}

	slog.Info("rounds recorded", "match_id", matchID)

	w.WriteHeader(http.StatusNoContent)
}

// RecordRound handles PUT /matches/{id}/rounds/{round} (mod or above)
// Sets a single round while a match is in progress
func (h *MatchHandler) RecordRound(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	if matchID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	round, err := strconv.Atoi(r.PathValue("round"))
	if err != nil || round < 0 || round >= scoregrid.Rounds {
		middleware.ErrorResponse(w, http.StatusBadRequest, "round must be 0-8")
		return
	}

	var req scoregrid.WinPair
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Home < 0 || req.Away < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "wins cannot be negative")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Checked under the same transaction as the writes
	exists, err := matchExists(tx, matchID, h.lockRows())
	if err != nil {
		slog.Error("failed to query match", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}

	_, err = tx.Exec(`
		DELETE FROM match_round WHERE match_id = $1 AND round_index = $2
	`, matchID, round)
	if err != nil {
		slog.Error("failed to delete old round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record round")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO match_round (match_id, round_index, home_wins, away_wins)
		VALUES ($1, $2, $3, $4)
	`, matchID, round, req.Home, req.Away)
	if err != nil {
		slog.Error("failed to insert round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record round")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record round")
		return
	}

	slog.Info("round recorded", "match_id", matchID, "round", round)

	w.WriteHeader(http.StatusNoContent)
}

// DeleteMatch handles DELETE /matches/{id} (admin only)
func (h *MatchHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	if matchID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Rounds first; sqlite only cascades with foreign_keys enabled
	if _, err := tx.Exec(`DELETE FROM match_round WHERE match_id = $1`, matchID); err != nil {
		slog.Error("failed to delete rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete match")
		return
	}

	res, err := tx.Exec(`DELETE FROM league_match WHERE id = $1`, matchID)
	if err != nil {
		slog.Error("failed to delete match", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete match")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete match")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete match")
		return
	}

	slog.Info("match deleted", "match_id", matchID)

	w.WriteHeader(http.StatusNoContent)
}

// lockRows reports whether the database supports SELECT ... FOR UPDATE
func (h *MatchHandler) lockRows() bool {
	return h.cfg.DatabaseType == "postgres"
}

// validPlayers checks a side has exactly three non-empty names
func validPlayers(names []string) bool {
	if len(names) != scoregrid.Players {
		return false
	}
	for _, n := range names {
		if n == "" {
			return false
		}
	}
	return true
}
