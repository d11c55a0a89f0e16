package server

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/token"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUserID stores the authenticated user ID
	ContextKeyUserID ContextKey = "user_id"
	// ContextKeyClaims stores the verified access token claims
	ContextKeyClaims ContextKey = "claims"
	// ContextKeyRequestID stores the request correlation ID
	ContextKeyRequestID ContextKey = "request_id"
)

const missingBearerMsg = "Missing Bearer token. Expected 'Authorization: Bearer <JWT>'"

// RequireAuth is middleware that validates a Bearer access token
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeMsg(w, http.StatusUnauthorized, missingBearerMsg)
				return
			}

			claims, err := s.tokens.Verify(raw, token.TypeAccess)
			if err != nil {
				writeTokenError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextKeyClaims, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	scheme, raw, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func userIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(int)
	return id, ok
}

// writeTokenError answers a rejected JWT the way the API always has: 401 with a msg key.
func writeTokenError(w http.ResponseWriter, err error) {
	if apperrors.Is(err, apperrors.ErrTokenExpired) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token has expired"})
		return
	}
	writeJSON(w, http.StatusUnauthorized, map[string]string{
		"msg":   "Invalid token",
		"error": err.Error(),
	})
}
