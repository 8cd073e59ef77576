package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "techscene/internal/delivery/http/helpers"
	"techscene/internal/domain"
	"techscene/internal/lib/logger/sl"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionCookie is the cookie the identity provider sets for browser sessions.
const SessionCookie = "__session"

// SetSession returns a context carrying the verified session. Used by auth middleware.
func SetSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the verified session from the context, if present.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*domain.Session)
	return s, ok && s != nil
}

// TokenFromRequest returns the session token from a Bearer Authorization header,
// falling back to the session cookie. It returns "" when neither is present.
func TokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return ""
		}
		return strings.TrimSpace(auth[len(prefix):])
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// RequireSession returns a wrapper that verifies the session token and stores the session
// in the request context. If the token is missing or invalid, it responds with 401 and does
// not call next.
func RequireSession(verifier domain.SessionVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "sign in required")
				return
			}
			session, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "session rejected", slog.String("path", r.URL.Path), sl.Err(err))
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired session")
				return
			}
			next(w, r.WithContext(SetSession(r.Context(), session)))
		}
	}
}
