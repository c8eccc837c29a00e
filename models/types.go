package models

import (
	"time"

	"github.com/danielhkuo/skittles-scoresheet/scoregrid"
)

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type CreateMatchRequest struct {
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	HomePlayers []string  `json:"home_players"`
	AwayPlayers []string  `json:"away_players"`
	PlayedAt    time.Time `json:"played_at"`
}

// Rounds in playing order, index 0..8
type RecordRoundsRequest struct {
	Rounds []scoregrid.WinPair `json:"rounds"`
}

// Response types

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CreateUserResponse struct {
	UserID string `json:"user_id"`
}

type CreateMatchResponse struct {
	MatchID string `json:"match_id"`
}

type MeResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

type ScoresheetResponse struct {
	MatchID     string             `json:"match_id"`
	HomeTeam    string             `json:"home_team"`
	AwayTeam    string             `json:"away_team"`
	HomePlayers []string           `json:"home_players"`
	AwayPlayers []string           `json:"away_players"`
	Grid        [][]scoregrid.Cell `json:"grid"`
	Totals      scoregrid.WinPair  `json:"totals"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         *string   `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Match struct {
	ID          string    `json:"id"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	HomePlayers []string  `json:"home_players"`
	AwayPlayers []string  `json:"away_players"`
	PlayedAt    time.Time `json:"played_at"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Rounds      []Round   `json:"rounds"`
}

// Round is one recorded round; Index is its place in playing order (0-8)
type Round struct {
	Index int `json:"index"`
	Home  int `json:"home"`
	Away  int `json:"away"`
}

type MatchSummary struct {
	ID           string    `json:"id"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	PlayedAt     time.Time `json:"played_at"`
	RoundsPlayed int       `json:"rounds_played"`
	HomeTotal    int       `json:"home_total"`
	AwayTotal    int       `json:"away_total"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
