package useradmin

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("useradmin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8084" {
		t.Fatalf("http_addr = %q, want %q", cfg.HTTPAddr, ":8084")
	}
	if cfg.APIURL != "http://localhost:8000" {
		t.Fatalf("api_url = %q", cfg.APIURL)
	}
	if cfg.APITimeout != 5*time.Second {
		t.Fatalf("api_timeout = %s, want 5s", cfg.APITimeout)
	}
	if cfg.HomeURL != "http://localhost:3000/" {
		t.Fatalf("home_url = %q", cfg.HomeURL)
	}
	if cfg.AuthIntrospectURL != "" {
		t.Fatalf("auth introspect url = %q, want empty", cfg.AuthIntrospectURL)
	}
	if cfg.RateLimit != 20 || cfg.RateBurst != 40 {
		t.Fatalf("rate = %v/%d, want 20/40", cfg.RateLimit, cfg.RateBurst)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("log = %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("USERADMIN_HTTP_ADDR", ":9000")
	t.Setenv("USERADMIN_API_URL", "http://env-api")
	t.Setenv("USERADMIN_API_TIMEOUT", "750ms")
	t.Setenv("USERADMIN_AUTH_INTROSPECT_URL", "http://auth/introspect")

	fs := flag.NewFlagSet("useradmin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-api-url", "http://flag-api", "-home-url", "http://flag-home/"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Fatalf("http_addr = %q, want env value", cfg.HTTPAddr)
	}
	if cfg.APIURL != "http://flag-api" {
		t.Fatalf("api_url = %q, want flag value", cfg.APIURL)
	}
	if cfg.HomeURL != "http://flag-home/" {
		t.Fatalf("home_url = %q, want flag value", cfg.HomeURL)
	}
	if cfg.APITimeout != 750*time.Millisecond {
		t.Fatalf("api_timeout = %s", cfg.APITimeout)
	}
	if cfg.AuthIntrospectURL != "http://auth/introspect" {
		t.Fatalf("auth introspect url = %q", cfg.AuthIntrospectURL)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("USERADMIN_API_TIMEOUT", "soon")
	fs := flag.NewFlagSet("useradmin", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("debug", "json", &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %s, want debug", logger.GetLevel())
	}
	logger.WithField("operation", "list_users").Debug("fetch users failed")
	if !strings.Contains(buf.String(), `"operation":"list_users"`) {
		t.Fatalf("expected json output, got %q", buf.String())
	}

	if _, err := NewLogger("loud", "text", &buf); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := NewLogger("info", "xml", &buf); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestServerConfigEnablesAuthOnlyWithIntrospectURL(t *testing.T) {
	logger := logrus.New()
	cfg := Config{HTTPAddr: ":0", APIURL: "http://api", HomeURL: "http://home/", RateLimit: 5, RateBurst: 10}
	if got := serverConfig(cfg, logger, nil); got.AuthConfig != nil {
		t.Fatalf("auth config = %+v, want nil", got.AuthConfig)
	}

	cfg.AuthIntrospectURL = "http://auth/introspect"
	cfg.AuthLoginURL = "http://auth/login"
	got := serverConfig(cfg, logger, nil)
	if got.AuthConfig == nil || got.AuthConfig.IntrospectURL != cfg.AuthIntrospectURL || got.AuthConfig.LoginURL != cfg.AuthLoginURL {
		t.Fatalf("auth config = %+v", got.AuthConfig)
	}
	if got.APIBaseURL != "http://api" || got.HomeURL != "http://home/" || got.RateLimit != 5 || got.RateBurst != 10 {
		t.Fatalf("server config = %+v", got)
	}
}
