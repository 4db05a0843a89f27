package middleware

import (
	"context"
	"net/http"
	"strings"

	"nlt_server_go/auth"
)

// Context keys for the authenticated agent.
const (
	AgentIDKey   = "agentID"
	AgentCodeKey = "agentCode"
	IsAdminKey   = "isAdmin"
)

// JWTMiddleware checks the Authorization header and puts the agent
// identity into the request context.
func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			http.Error(w, "Invalid Authorization header (expected Bearer {token})", http.StatusUnauthorized)
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			http.Error(w, "Invalid token: "+err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AgentIDKey, claims.AgentID)
		ctx = context.WithValue(ctx, AgentCodeKey, claims.Code)
		ctx = context.WithValue(ctx, IsAdminKey, claims.IsAdmin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly rejects requests from non-admin agents.
func AdminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isAdmin, ok := r.Context().Value(IsAdminKey).(bool)
		if !ok || !isAdmin {
			http.Error(w, "Administrator access required", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
