package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/fixhub/repairshop/pkg/auth"
)

type contextKey string

// CustomerIDKey carries the authenticated customer id through the request
// context.
const CustomerIDKey contextKey = "customer_id"

// AuthMiddleware validates the bearer token and stores the authenticated
// customer id in the request context.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			respondError(w, http.StatusUnauthorized, "could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), CustomerIDKey, claims.CustomerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// actorID extracts the authenticated customer id placed by AuthMiddleware.
func actorID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(CustomerIDKey).(uint)
	return id, ok
}
