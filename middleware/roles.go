// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/skittles-scoresheet/auth"
)

type claimsKey struct{}

// ClaimsFromContext returns the verified session claims, or nil for an
// anonymous request
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims
}

// bearerToken pulls the token out of "Authorization: Bearer <token>"
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}

// RequireRole admits requests whose session role satisfies minRole.
// With an empty minRole every request passes; a valid token still has its
// claims attached.
func RequireRole(secret string, minRole auth.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := auth.RoleNone

		if token := bearerToken(r); token != "" {
			claims, err := auth.ParseToken(secret, token)
			if err == nil {
				role = claims.Role
				r = r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims))
			} else if minRole != auth.RoleNone {
				ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
		} else if minRole != auth.RoleNone {
			ErrorResponse(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		if !auth.IsAuthorized(role, minRole) {
			slog.Warn("role check denied", "path", r.URL.Path, "role", string(role), "min_role", string(minRole))
			ErrorResponse(w, http.StatusForbidden, "Insufficient role")
			return
		}

		next(w, r)
	}
}

// RequireLogin admits any request carrying a valid session token,
// regardless of role
func RequireLogin(secret string, next http.HandlerFunc) http.HandlerFunc {
	return RequireRole(secret, auth.RoleNone, func(w http.ResponseWriter, r *http.Request) {
		if ClaimsFromContext(r.Context()) == nil {
			ErrorResponse(w, http.StatusUnauthorized, "Authorization header required")
			return
		}
		next(w, r)
	})
}
