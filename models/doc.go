// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: username, password
  - CreateUserRequest: username, password, role
  - CreateMatchRequest: teams, three players per side, played_at
  - RecordRoundsRequest: rounds (nine home/away win pairs in playing order)

# Response Types

  - LoginResponse: token, username, role, expires_at
  - CreateUserResponse: user_id
  - CreateMatchResponse: match_id
  - MeResponse: user_id, username, role
  - ScoresheetResponse: 3x3 grid and totals
  - ErrorResponse: error, message

# Domain Types

  - User: login account (hash never serialized)
  - Match: teams, players, and recorded rounds
  - MatchSummary: list entry with round count and totals
*/
package models
