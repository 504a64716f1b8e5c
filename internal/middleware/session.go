package middleware

import (
	"context"
	"net/http"

	"ticketvue/internal/logging"
	"ticketvue/internal/store"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// SessionName is the cookie holding the session id and CSRF token
const SessionName = "ticketvue_session"

const (
	sessionIDValue = "session_id"
	csrfTokenValue = "csrf_token"
)

type contextKey string

const (
	StoreContextKey     contextKey = "store"
	SessionIDContextKey contextKey = "session_id"
	CSRFTokenContextKey contextKey = "csrf_token"
)

// NewCookieStore creates the signed cookie store used for browser sessions
func NewCookieStore(secret string, secure bool, maxAge int) *sessions.CookieStore {
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return cookies
}

// SessionMiddleware binds every request to its session's state store
type SessionMiddleware struct {
	cookies  sessions.Store
	registry *store.Registry
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(cookies sessions.Store, registry *store.Registry) *SessionMiddleware {
	return &SessionMiddleware{
		cookies:  cookies,
		registry: registry,
	}
}

// LoadStore makes sure the browser has a session id and CSRF token, then
// puts the matching store in the request context
func (m *SessionMiddleware) LoadStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.FromContext(r.Context())

		// a cookie that fails to decode yields a fresh session
		session, err := m.cookies.Get(r, SessionName)
		if err != nil {
			logger.WithError(err).Debug("Discarding unreadable session cookie")
		}

		changed := false
		sessionID, _ := session.Values[sessionIDValue].(string)
		if sessionID == "" {
			sessionID = uuid.NewString()
			session.Values[sessionIDValue] = sessionID
			changed = true
		}
		token, _ := session.Values[csrfTokenValue].(string)
		if token == "" {
			token = GenerateCSRFToken()
			session.Values[csrfTokenValue] = token
			changed = true
		}
		if changed {
			if err := session.Save(r, w); err != nil {
				logger.WithError(err).Error("Failed to save session")
			}
		}

		ctx := WithStore(r.Context(), sessionID, m.registry.Get(sessionID))
		ctx = context.WithValue(ctx, CSRFTokenContextKey, token)

		logger = logger.WithField("session_id", sessionID)
		if user := GetUserFromContext(ctx); user != nil {
			logger = logger.WithField("user_id", user.ID)
		}
		ctx = logging.ToContext(ctx, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithStore attaches a session store to ctx
func WithStore(ctx context.Context, sessionID string, st *store.Store) context.Context {
	ctx = context.WithValue(ctx, SessionIDContextKey, sessionID)
	return context.WithValue(ctx, StoreContextKey, st)
}

// GetStore returns the session store, or nil outside LoadStore
func GetStore(ctx context.Context) *store.Store {
	st, _ := ctx.Value(StoreContextKey).(*store.Store)
	return st
}

// GetSessionID returns the browser session id
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDContextKey).(string)
	return id
}

// SecureHeaders adds security headers to responses
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:;")

		// Only set HSTS for HTTPS
		if r.TLS != nil {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
