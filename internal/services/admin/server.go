package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/useradmin/internal/platform/telemetry/metrics"
	"github.com/louisbranch/useradmin/internal/platform/timeouts"
	routepath "github.com/louisbranch/useradmin/internal/services/admin/routepath"
	"github.com/louisbranch/useradmin/internal/services/admin/screen"
	"github.com/louisbranch/useradmin/internal/services/admin/transport/httpmux"
	"github.com/louisbranch/useradmin/internal/services/admin/usersapi"
	sharedroute "github.com/louisbranch/useradmin/internal/services/shared/route"
	"github.com/sirupsen/logrus"
)

// Config defines the inputs for the user admin process.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	// APITimeout bounds each users API call.
	APITimeout time.Duration
	// HomeURL receives operators who are not admins.
	HomeURL string
	// AuthConfig enables token-based authentication when set.
	AuthConfig *AuthConfig
	Logger     logrus.FieldLogger
	// Metrics is exposed on /metrics and records API and HTTP outcomes.
	Metrics *metrics.Registry
	// HTTPClient carries users API calls. Defaults to a fresh client.
	HTTPClient *http.Client
	// RateLimit caps screen requests per second across all operators, with
	// RateBurst requests allowed at once. A zero RateLimit disables the cap.
	RateLimit float64
	RateBurst int
}

// Server hosts the user admin screen.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     logrus.FieldLogger
}

// NewServer builds a configured admin server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	homeURL := strings.TrimSpace(config.HomeURL)
	if homeURL == "" {
		return nil, errors.New("home url is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if config.APITimeout <= 0 {
		config.APITimeout = timeouts.APIRequest
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	opts := []usersapi.Option{usersapi.WithTimeout(config.APITimeout)}
	if config.Metrics != nil {
		opts = append(opts, usersapi.WithObserver(config.Metrics))
	}
	apiClient, err := usersapi.NewClient(config.APIBaseURL, httpClient, opts...)
	if err != nil {
		return nil, fmt.Errorf("users api client: %w", err)
	}

	handler := NewHandler(screen.New(apiClient, logger), homeURL, logger)
	if config.AuthConfig.Enabled() {
		loginURL := strings.TrimSpace(config.AuthConfig.LoginURL)
		if loginURL == "" {
			loginURL = homeURL
		}
		introspector := newHTTPIntrospector(config.AuthConfig.IntrospectURL, config.AuthConfig.ResourceSecret)
		handler = requireAuth(handler, introspector, loginURL, logger)
	} else {
		logger.Warn("auth introspection disabled, serving every request as a local admin")
		handler = withLocalActor(handler)
	}

	handler = limitRequests(handler, newLimiter(config.RateLimit, config.RateBurst), logger)
	handler = withRequestID(handler)

	rootMux := http.NewServeMux()
	httpmux.MountAdminRoutes(rootMux, config.Metrics.InstrumentBy(routeLabel, handler))
	if config.Metrics != nil {
		httpmux.MountMetrics(rootMux, config.Metrics.Handler())
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           rootMux,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	s.logger.WithField("addr", s.httpAddr).Info("user admin listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources without waiting for in-flight requests.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.WithError(err).Warn("close http server")
	}
}

// routeLabel maps request paths onto a bounded set of metric labels.
func routeLabel(r *http.Request) string {
	path := r.URL.Path
	switch path {
	case routepath.Root, routepath.Users, routepath.UsersTable, routepath.UsersNew, routepath.UsersDialog, routepath.UsersSave:
		return path
	}
	if strings.HasPrefix(path, routepath.UsersPrefix) {
		parts := sharedroute.SplitPathParts(strings.TrimPrefix(path, routepath.UsersPrefix))
		if len(parts) == 2 && (parts[1] == routepath.UserEditSegment || parts[1] == routepath.UserDeleteSegment) {
			return routepath.UsersPrefix + "{id}/" + parts[1]
		}
	}
	return "other"
}
