// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/skittles-scoresheet/models"
	"github.com/danielhkuo/skittles-scoresheet/scoregrid"
)

// getMatch loads a match and its recorded rounds.
// Returns sql.ErrNoRows if the match does not exist.
func getMatch(db *sql.DB, matchID string) (*models.Match, error) {
	var m models.Match
	var home, away [scoregrid.Players]string

	err := db.QueryRow(`
		SELECT id, home_team, away_team,
		       home_player1, home_player2, home_player3,
		       away_player1, away_player2, away_player3,
		       played_at, created_by, created_at
		FROM league_match
		WHERE id = $1
	`, matchID).Scan(
		&m.ID, &m.HomeTeam, &m.AwayTeam,
		&home[0], &home[1], &home[2],
		&away[0], &away[1], &away[2],
		&m.PlayedAt, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.HomePlayers = home[:]
	m.AwayPlayers = away[:]

	m.Rounds, err = getRounds(db, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rounds: %w", err)
	}

	return &m, nil
}

// getRounds retrieves recorded rounds in playing order
func getRounds(db *sql.DB, matchID string) ([]models.Round, error) {
	rows, err := db.Query(`
		SELECT round_index, home_wins, away_wins
		FROM match_round
		WHERE match_id = $1
		ORDER BY round_index
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rounds := []models.Round{}
	for rows.Next() {
		var p models.Round
		if err := rows.Scan(&p.Index, &p.Home, &p.Away); err != nil {
			return nil, err
		}
		rounds = append(rounds, p)
	}

	return rounds, rows.Err()
}

// queryRower is satisfied by both *sql.DB and *sql.Tx
type queryRower interface {
	QueryRow(query string, args ...interface{}) *sql.Row
}

// matchExists reports whether a match row is present.
// With lock set the row is held until the transaction ends (Postgres only).
func matchExists(q queryRower, matchID string, lock bool) (bool, error) {
	query := `SELECT 1 FROM league_match WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var one int
	err := q.QueryRow(query, matchID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// winPairs converts recorded rounds for the scoresheet grid
func winPairs(rounds []models.Round) []scoregrid.WinPair {
	pairs := make([]scoregrid.WinPair, len(rounds))
	for i, r := range rounds {
		pairs[i] = scoregrid.WinPair{Home: r.Home, Away: r.Away}
	}
	return pairs
}
