// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, client IP) and completion
(duration_ms). The request ID comes from X-Request-ID or a fresh UUID and
is echoed back in the response header.

# Role Checks

Gate a handler on a minimum role from the session token:

	mux.HandleFunc("POST /matches", middleware.WithLogging(
		middleware.RequireRole(cfg.JWTSecret, auth.RoleMod, h.CreateMatch)))

Tokens are read from "Authorization: Bearer <jwt>". A missing or invalid
token is 401 when a role is required; a valid token with too low a role is
403. Verified claims are available to the handler:

	claims := middleware.ClaimsFromContext(r.Context())

RequireLogin admits any valid token regardless of role.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP; used in request logs.
*/
package middleware
