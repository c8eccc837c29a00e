// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoregrid lays out a match's nine rounds on a 3x3 scoresheet.

# Layout

Rows are the home players, columns the away players. Each cell shows one
round, split diagonally: home wins in the upper-left triangle, away wins in
the lower-right.

	grid, err := scoregrid.Build(rounds, homePlayers, awayPlayers)

Rounds are stored in playing order. The cell for (row, col) holds round
RoundIndex(row, col) = (9 - 2*row + 3*col) mod 9.

# Input Shape

Build requires exactly 9 rounds and exactly 3 players per side. Anything
else returns *InvalidShapeError and no grid.
*/
package scoregrid
