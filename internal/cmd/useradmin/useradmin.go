// Package useradmin parses user admin command flags and launches the server.
package useradmin

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/useradmin/internal/platform/cmd"
	"github.com/louisbranch/useradmin/internal/platform/telemetry/metrics"
	"github.com/louisbranch/useradmin/internal/services/admin"
	"github.com/sirupsen/logrus"
)

// Config holds the user admin command configuration.
type Config struct {
	HTTPAddr   string        `env:"USERADMIN_HTTP_ADDR" envDefault:":8084"`
	APIURL     string        `env:"USERADMIN_API_URL" envDefault:"http://localhost:8000"`
	APITimeout time.Duration `env:"USERADMIN_API_TIMEOUT" envDefault:"5s"`
	HomeURL    string        `env:"USERADMIN_HOME_URL" envDefault:"http://localhost:3000/"`

	AuthIntrospectURL  string `env:"USERADMIN_AUTH_INTROSPECT_URL"`
	AuthResourceSecret string `env:"USERADMIN_AUTH_RESOURCE_SECRET"`
	AuthLoginURL       string `env:"USERADMIN_AUTH_LOGIN_URL" envDefault:"http://localhost:3000/login"`

	RateLimit float64 `env:"USERADMIN_RATE_LIMIT" envDefault:"20"`
	RateBurst int     `env:"USERADMIN_RATE_BURST" envDefault:"40"`

	LogLevel  string `env:"USERADMIN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"USERADMIN_LOG_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Users API base URL")
	fs.StringVar(&cfg.HomeURL, "home-url", cfg.HomeURL, "Application home URL for non-admin operators")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the process logger from the configured level and format.
func NewLogger(level string, format string, out io.Writer) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(out)

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(parsed)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log format %q is not supported", format)
	}
	return logger, nil
}

// Run starts the user admin server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := NewLogger(cfg.LogLevel, cfg.LogFormat, nil)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceUserAdmin, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := admin.NewServer(ctx, serverConfig(cfg, logger, metrics.NewRegistry()))
		if err != nil {
			return fmt.Errorf("init user admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve user admin: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config, logger logrus.FieldLogger, registry *metrics.Registry) admin.Config {
	serverCfg := admin.Config{
		HTTPAddr:   cfg.HTTPAddr,
		APIBaseURL: cfg.APIURL,
		APITimeout: cfg.APITimeout,
		HomeURL:    cfg.HomeURL,
		Logger:     logger,
		Metrics:    registry,
		RateLimit:  cfg.RateLimit,
		RateBurst:  cfg.RateBurst,
	}
	if strings.TrimSpace(cfg.AuthIntrospectURL) != "" {
		serverCfg.AuthConfig = &admin.AuthConfig{
			IntrospectURL:  cfg.AuthIntrospectURL,
			ResourceSecret: cfg.AuthResourceSecret,
			LoginURL:       cfg.AuthLoginURL,
		}
	}
	return serverCfg
}
