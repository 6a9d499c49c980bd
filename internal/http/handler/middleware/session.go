package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/pkg/jwt"
	"go.uber.org/zap"
)

const SessionCookie = "remember_token"

const currentUserKey = contextKey("current_user")

type SessionMiddleware struct {
	logs     *zap.SugaredLogger
	resolver SessionResolver
}

func NewSessionMiddleware(logger *zap.SugaredLogger, resolver SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{
		logs:     logger,
		resolver: resolver,
	}
}

// Session loads the user owning the session cookie. A cookie that can never
// resolve again is cleared. Any other failure leaves the cookie in place and
// the request continues anonymously.
func (m *SessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		requestId := RequestIDFromContext(r.Context())

		user, err := m.resolver.CurrentUser(r.Context(), cookie.Value)
		if err != nil {
			if staleSession(err) {
				m.logs.Infow("discarding session cookie",
					"error", err,
					"request_id", requestId)
				ClearSessionCookie(w)
			} else {
				m.logs.Errorw("failed to resolve session",
					"error", err,
					"request_id", requestId)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCurrentUser(r.Context(), user)))
	})
}

func staleSession(err error) bool {
	return errors.Is(err, jwt.ErrTokenNotValid) ||
		errors.Is(err, jwt.ErrTokenExpired) ||
		errors.Is(err, core.ErrUserNotFound)
}

func WithCurrentUser(ctx context.Context, user core.UserRecord) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUser returns the signed in user, if any.
func CurrentUser(ctx context.Context) (core.UserRecord, bool) {
	user, ok := ctx.Value(currentUserKey).(core.UserRecord)
	return user, ok
}

func SetSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
