// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides role checks, password hashing, and session tokens.

# Roles

Two privilege tiers exist, mod and admin, with admin above mod:

	auth.IsAuthorized(auth.RoleAdmin, auth.RoleMod) // true
	auth.IsAuthorized(auth.RoleMod, auth.RoleAdmin) // false

An empty minimum role admits every caller, authenticated or not. Any role
or minimum outside the two tiers is denied. Matching is exact and
case-sensitive.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password) // ErrInvalidCredentials on mismatch

# Session Tokens

Login issues an HS256 JWT carrying the user ID (sub), username, and role:

	token, err := auth.IssueToken(secret, userID, username, role, 12*time.Hour)
	claims, err := auth.ParseToken(secret, token)

ParseToken returns ErrInvalidToken for any signature, algorithm, or expiry
failure.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
