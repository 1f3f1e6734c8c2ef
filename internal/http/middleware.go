package http

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/sales-tracker/internal/auth"
	"github.com/rogerio-castellano/sales-tracker/internal/http/ban"
	rl "github.com/rogerio-castellano/sales-tracker/internal/http/rate_limiter"
)

type contextKey string

const userIDKey = contextKey("user_id")

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		token, claims, err := auth.TokenClaims(authorization)
		if err != nil || !token.Valid {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		userID := 0
		if sub, ok := claims["sub"].(float64); ok {
			userID = int(sub)
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

// RateLimitMiddleware throttles per client IP and hands repeat offenders to
// the ban layer. Applied to the credential endpoints only.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if ban.IsBanned(ip) {
			http.Error(w, "too many requests, try again later", http.StatusForbidden)
			return
		}
		if !rl.GetVisitor(ip).Allow() {
			ban.Strike(ip, r.URL.Path)
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
