package csrf

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// Middleware makes sure every request carries a session id cookie and puts
// the id into the request context. Cookies that are not UUIDs are replaced.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := m.sessionIDFromRequest(r)
		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     m.config.CookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.config.SecureCookie,
				SameSite: http.SameSiteLaxMode,
			})
			m.logger.DebugContext(r.Context(), "csrf session started",
				logger.Component("csrf"),
				logger.SessionID(sid),
			)
		}

		next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sid)))
	})
}

func (m *Manager) sessionIDFromRequest(r *http.Request) string {
	c, err := r.Cookie(m.config.CookieName)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return ""
	}
	return id.String()
}
