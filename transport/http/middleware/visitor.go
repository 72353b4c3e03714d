package middleware

import (
	"context"
	"net/http"
	"starlight/internal/session"
	"starlight/shared/constant"
	"starlight/shared/failure"
	"starlight/transport/http/response"
	"time"
)

const visitorCookieMaxAge = 365 * 24 * time.Hour

// Visitor identifies the browser behind a request. An explicit header must
// hold a valid id; otherwise the cookie is used, and a new id is issued when
// the cookie is missing or malformed.
func (a *appMiddleware) Visitor(next http.Handler) http.Handler {
	cookieName := a.config.Site.SessionCookie
	if cookieName == constant.Empty {
		cookieName = DefaultVisitorCookie
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(constant.RequestHeaderVisitorID); id != constant.Empty {
			if !session.ValidID(id) {
				response.WithError(w, failure.InvalidVisitor)

				return
			}

			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))

			return
		}

		if cookie, err := r.Cookie(cookieName); err == nil && session.ValidID(cookie.Value) {
			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), cookie.Value)))

			return
		}

		id := session.NewID()

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(visitorCookieMaxAge.Seconds()),
			HttpOnly: true,
			Secure:   a.config.Server.Env == constant.ServerEnvProduction,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
	})
}

const DefaultVisitorCookie = "starlight_visitor"

func WithVisitor(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyVisitorID, id)
}

// VisitorID returns the visitor set by the Visitor middleware.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeyVisitorID).(string)

	return id
}
