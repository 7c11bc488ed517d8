package admin

import (
	"net/http"
	"strings"

	"github.com/louisbranch/useradmin/internal/platform/requestctx"
	"github.com/louisbranch/useradmin/internal/platform/timeouts"
	routepath "github.com/louisbranch/useradmin/internal/services/admin/routepath"
	"github.com/louisbranch/useradmin/internal/services/shared/authctx"
	"github.com/louisbranch/useradmin/internal/services/shared/htmx"
	"github.com/sirupsen/logrus"
)

// tokenCookieName is the domain-scoped cookie set by the login service.
const tokenCookieName = "useradmin_token"

// localActorID identifies the operator when authentication is disabled.
const localActorID = "local-admin"

// AuthConfig holds auth middleware configuration for the admin screen.
type AuthConfig struct {
	IntrospectURL  string
	ResourceSecret string
	LoginURL       string
}

// Enabled reports whether token introspection is configured.
func (c *AuthConfig) Enabled() bool {
	return c != nil && strings.TrimSpace(c.IntrospectURL) != ""
}

// requireAuth wraps next with token-introspection-based authentication.
//
// The introspected actor, including its token, is stored in the request
// context so downstream API calls run with the operator's credentials.
func requireAuth(next http.Handler, introspector TokenIntrospector, loginURL string, logger logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token := requestToken(r)
		if token == "" {
			htmx.Redirect(w, r, loginURL)
			return
		}

		result, err := introspector.Introspect(r.Context(), token)
		if err != nil {
			logger.WithError(err).Warn("admin auth introspect failed")
			htmx.Redirect(w, r, loginURL)
			return
		}
		if !result.Active {
			htmx.Redirect(w, r, loginURL)
			return
		}

		ctx := requestctx.WithActor(r.Context(), result.Actor(token))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withLocalActor runs every request as a local admin. It is used when no
// introspection endpoint is configured.
func withLocalActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestctx.WithActor(r.Context(), requestctx.Actor{
			UserID: localActorID,
			Role:   requestctx.RoleAdmin,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin sends actors without the admin role to homeURL. Nothing of the
// screen renders and no API call is made for them.
func requireAdmin(next http.Handler, homeURL string, logger logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requestctx.ActorFromContext(r.Context())
		if !ok || !actor.IsAdmin() {
			logger.WithFields(logrus.Fields{
				"actor_id": actor.UserID,
				"role":     actor.Role,
				"path":     r.URL.Path,
			}).Info("non-admin actor redirected")
			htmx.Redirect(w, r, homeURL)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path string) bool {
	return path == routepath.Metrics
}

func requestToken(r *http.Request) string {
	if cookie, err := r.Cookie(tokenCookieName); err == nil {
		if token := strings.TrimSpace(cookie.Value); token != "" {
			return token
		}
	}
	if header := strings.TrimSpace(r.Header.Get("Authorization")); len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}

// TokenIntrospector validates an OAuth access token via introspection.
type TokenIntrospector = authctx.Introspector

// introspectResponse mirrors the auth service's introspect JSON shape.
type introspectResponse = authctx.IntrospectionResult

// newHTTPIntrospector creates an introspector that POSTs to the given URL.
func newHTTPIntrospector(url, resourceSecret string) TokenIntrospector {
	return authctx.NewHTTPIntrospector(url, resourceSecret, &http.Client{Timeout: timeouts.Introspect})
}
