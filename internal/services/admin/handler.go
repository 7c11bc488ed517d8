package admin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/useradmin/internal/services/admin/i18n"
	"github.com/louisbranch/useradmin/internal/services/admin/module/users"
	routepath "github.com/louisbranch/useradmin/internal/services/admin/routepath"
	"github.com/louisbranch/useradmin/internal/services/admin/screen"
	"github.com/louisbranch/useradmin/internal/services/admin/templates"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

// Handler routes user screen requests.
type Handler struct {
	screen  *screen.Screen
	homeURL string
	logger  logrus.FieldLogger
}

// NewHandler builds the HTTP handler for the user screen. Every route
// requires an admin actor in the request context; others are sent to homeURL.
func NewHandler(userScreen *screen.Screen, homeURL string, logger logrus.FieldLogger) http.Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	handler := &Handler{
		screen:  userScreen,
		homeURL: homeURL,
		logger:  logger,
	}
	return handler.routes()
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Root, h.handleRoot)
	users.RegisterRoutes(mux, h)
	return requireAdmin(mux, h.homeURL, h.logger)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	target := routepath.Users
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	return templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		HomeURL:      h.homeURL,
	}
}


func requireMethod(w http.ResponseWriter, r *http.Request, loc *message.Printer, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, loc.Sprintf("error.method_not_allowed"), http.StatusMethodNotAllowed)
	return false
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
