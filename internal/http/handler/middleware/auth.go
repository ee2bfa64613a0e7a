package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const UserIDKey contextKey = "user_id"
const AuthMethodKey contextKey = "auth_method"

// AuthMiddleware enforces the bearer-token convention on protected routes.
// Tokens from either auth method grant equivalent access; the auth_method
// claim is only carried along for downstream consumers.
type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(RequestIDKey).(string)

		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			m.reject(w, "access token required")
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			m.logs.Errorw("token validation failed", "error", err, "request_id", requestID)
			m.reject(w, "invalid or expired token")
			return
		}

		subject, ok := claims["sub"].(string)
		if !ok || subject == "" {
			m.reject(w, "invalid or expired token")
			return
		}
		authMethod, _ := claims["auth_method"].(string)

		ctx := context.WithValue(r.Context(), UserIDKey, subject)
		ctx = context.WithValue(ctx, AuthMethodKey, authMethod)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": reason})
}
