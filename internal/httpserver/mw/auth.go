package mw

import (
	"context"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/respond"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/session"
)

// SessionValidator resolves a bearer token to its session.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (domain.Session, error)
}

// RequireSession rejects requests without a valid "Authorization: Bearer"
// token before the handler runs, and attaches the session to the context.
// A missing header and an unknown token get the same 401 body.
func RequireSession(sessions SessionValidator, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respond.Error(w, r, log, domain.ErrUnauthorized)
				return
			}

			sess, err := sessions.Validate(r.Context(), token)
			if err != nil {
				respond.Error(w, r, log, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
