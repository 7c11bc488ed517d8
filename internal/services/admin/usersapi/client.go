// Package usersapi is the HTTP client for the remote account API consumed by
// the admin user screen.
package usersapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/louisbranch/useradmin/internal/platform/requestctx"
	"github.com/louisbranch/useradmin/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Operation names reported to observers and spans.
const (
	OpListUsers  = "list_users"
	OpCreateUser = "create_user"
	OpUpdateUser = "update_user"
	OpDeleteUser = "delete_user"
)

const (
	tracerName = "github.com/louisbranch/useradmin/internal/services/admin/usersapi"
	// maxErrorDetail caps how much of an error body is kept in StatusError.
	maxErrorDetail = 512
)

// Observer receives the outcome of every API call.
type Observer interface {
	ObserveAPICall(operation string, err error, elapsed time.Duration)
}

// Option customizes a Client.
type Option func(*Client)

// WithObserver reports call outcomes to observer.
func WithObserver(observer Observer) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// WithTimeout bounds every call. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.tracer = provider.Tracer(tracerName)
		}
	}
}

// Client calls the users API over JSON/HTTP.
//
// The access token of the actor in the call context is forwarded as a bearer
// token so the remote system applies its own authorization.
type Client struct {
	baseURL  string
	http     *http.Client
	observer Observer
	tracer   trace.Tracer
	timeout  time.Duration
}

// NewClient builds a client for the API rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("users api base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse users api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("users api base url must be http or https, got %q", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL: baseURL,
		http:    httpClient,
		tracer:  otel.Tracer(tracerName),
		timeout: timeouts.APIRequest,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// ListUsers fetches limit accounts after skipping skip accounts.
func (c *Client) ListUsers(ctx context.Context, skip, limit int) (UserPage, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var resp listResponse
	err := c.do(ctx, OpListUsers, http.MethodGet, "/users/", query, nil, &resp,
		attribute.Int("users.skip", skip),
		attribute.Int("users.limit", limit),
	)
	if err != nil {
		return UserPage{}, err
	}
	if resp.Items == nil {
		return UserPage{}, fmt.Errorf("%s: %w", OpListUsers, ErrMalformedResponse)
	}
	return UserPage{Items: *resp.Items, Total: resp.Total}, nil
}

// CreateUser creates an account.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	var user User
	if err := c.do(ctx, OpCreateUser, http.MethodPost, "/users/", nil, req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// UpdateUser applies a partial update to account id.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (User, error) {
	var user User
	err := c.do(ctx, OpUpdateUser, http.MethodPut, userPath(id), nil, req, &user,
		attribute.Int64("users.id", id),
	)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// DeleteUser removes account id.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, OpDeleteUser, http.MethodDelete, userPath(id), nil, nil, nil,
		attribute.Int64("users.id", id),
	)
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any, out any, attrs ...attribute.KeyValue) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()
	ctx, span := c.tracer.Start(ctx, "usersapi."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs, attribute.String("http.request.method", method))...),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if c.observer != nil {
			c.observer.ObserveAPICall(op, err, time.Since(started))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := requestctx.AccessTokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := requestctx.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(requestctx.RequestIDHeader, requestID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorDetail))
		return &StatusError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Detail:     strings.TrimSpace(string(detail)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		if op == OpListUsers {
			return fmt.Errorf("%s: %w", op, ErrMalformedResponse)
		}
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
