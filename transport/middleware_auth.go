package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/gadgetfix/application/session"
	utilsContext "github.com/muhammadheryan/gadgetfix/utils/context"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware resolves the actor from the session cookie, or from an
// Authorization: Bearer header for non-browser clients. A missing or invalid
// token leaves the request anonymous; each operation decides whether that
// is acceptable.
func AuthMiddleware(sessionApp session.SessionApp, cookieName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := sessionApp.Verify(r.Context(), token)
			if err != nil {
				logger.Debug("[AuthMiddleware] ignoring invalid session", zap.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithActor(r.Context(), actor)))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
