package http

import (
	"context"
	"net/http"

	"csa-console/internal/service"
	"csa-console/internal/session"
)

const (
	sessionCookie = "csa_session"
	sessionHeader = "X-Session-ID"
	pinHeader     = "X-Confirm-PIN"
)

type ctxKey struct{}

// requireSession пускает дальше только запросы с живой сессией.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		if id == "" {
			h.writeError(w, "session", service.ErrUnauthorized("login required"))
			return
		}
		sess, err := h.Auth.Resolve(r.Context(), id)
		if err != nil {
			h.clearCookie(w)
			h.writeError(w, "session", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sess)))
	})
}

func sessionFrom(ctx context.Context) session.Session {
	sess, _ := ctx.Value(ctxKey{}).(session.Session)
	return sess
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get(sessionHeader); id != "" {
		return id
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}

func (h *Handler) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
