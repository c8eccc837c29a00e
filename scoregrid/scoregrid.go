// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoregrid

import "fmt"

const (
	// Rounds is the number of rounds in a match
	Rounds = 9
	// Players is the number of players on each side
	Players = 3
)

// WinPair holds the wins scored by each side in a single round
type WinPair struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Cell is one square of the scoresheet. Home renders in the upper-left
// triangle, Away in the lower-right.
type Cell struct {
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Round      int    `json:"round"`
	HomePlayer string `json:"home_player"`
	AwayPlayer string `json:"away_player"`
	Home       int    `json:"home"`
	Away       int    `json:"away"`
}

// Grid is the 3x3 scoresheet: rows are home players, columns are away players
type Grid struct {
	HomePlayers [Players]string
	AwayPlayers [Players]string
	Cells       [Players][Players]Cell
}

// InvalidShapeError reports an input sequence of the wrong length
type InvalidShapeError struct {
	Field string
	Got   int
	Want  int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid input shape: %s has %d entries, want %d", e.Field, e.Got, e.Want)
}

// RoundIndex returns the round displayed at (row, col).
// Rounds follow the playing rotation, not row-major order:
//
//	row 0: 0 3 6
//	row 1: 7 1 4
//	row 2: 5 8 2
func RoundIndex(row, col int) int {
	return (Rounds - 2*row + 3*col) % Rounds
}

// Build lays out nine rounds on the scoresheet grid
func Build(rounds []WinPair, home, away []string) (Grid, error) {
	if len(rounds) != Rounds {
		return Grid{}, &InvalidShapeError{Field: "rounds", Got: len(rounds), Want: Rounds}
	}
	if len(home) != Players {
		return Grid{}, &InvalidShapeError{Field: "home players", Got: len(home), Want: Players}
	}
	if len(away) != Players {
		return Grid{}, &InvalidShapeError{Field: "away players", Got: len(away), Want: Players}
	}

	var g Grid
	copy(g.HomePlayers[:], home)
	copy(g.AwayPlayers[:], away)

	for row := 0; row < Players; row++ {
		for col := 0; col < Players; col++ {
			k := RoundIndex(row, col)
			g.Cells[row][col] = Cell{
				Row:        row,
				Col:        col,
				Round:      k,
				HomePlayer: home[row],
				AwayPlayer: away[col],
				Home:       rounds[k].Home,
				Away:       rounds[k].Away,
			}
		}
	}

	return g, nil
}

// Totals sums the wins of every round on the grid
func (g Grid) Totals() WinPair {
	var t WinPair
	for _, row := range g.Cells {
		for _, c := range row {
			t.Home += c.Home
			t.Away += c.Away
		}
	}
	return t
}

// Rows returns the cells in row-major order as slices
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, Players)
	for i := range g.Cells {
		rows[i] = append([]Cell(nil), g.Cells[i][:]...)
	}
	return rows
}
