// Package authctx resolves operator access tokens through the auth service.
package authctx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/louisbranch/useradmin/internal/platform/requestctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

const tracerName = "github.com/louisbranch/useradmin/internal/services/shared/authctx"

// maxResponseBytes bounds how much of an introspection answer is decoded.
const maxResponseBytes = 64 << 10

// ResourceSecretHeader authenticates this process to the auth service.
const ResourceSecretHeader = "X-Resource-Secret"

// ErrUnexpectedStatus reports a non-200 introspection answer.
var ErrUnexpectedStatus = errors.New("introspect returned unexpected status")

// IntrospectionResult is the auth service's answer for one token.
type IntrospectionResult struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Actor converts an active result into the request actor carrying token.
func (r IntrospectionResult) Actor(token string) requestctx.Actor {
	return requestctx.Actor{
		UserID:      strings.TrimSpace(r.UserID),
		Role:        strings.TrimSpace(r.Role),
		AccessToken: token,
	}
}

// Introspector validates an access token.
type Introspector interface {
	Introspect(ctx context.Context, token string) (IntrospectionResult, error)
}

// HTTPIntrospector POSTs tokens to a remote introspection endpoint.
type HTTPIntrospector struct {
	url            string
	resourceSecret string
	client         *http.Client
}

// NewHTTPIntrospector creates an introspector for url. A nil client uses
// http.DefaultClient.
func NewHTTPIntrospector(url, resourceSecret string, client *http.Client) *HTTPIntrospector {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPIntrospector{
		url:            strings.TrimSpace(url),
		resourceSecret: resourceSecret,
		client:         client,
	}
}

// Introspect validates token with the auth service.
func (h *HTTPIntrospector) Introspect(ctx context.Context, token string) (result IntrospectionResult, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "auth.introspect")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, nil)
	if err != nil {
		return IntrospectionResult{}, fmt.Errorf("build introspect request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if h.resourceSecret != "" {
		req.Header.Set(ResourceSecretHeader, h.resourceSecret)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := h.client.Do(req)
	if err != nil {
		return IntrospectionResult{}, fmt.Errorf("introspect request: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return IntrospectionResult{}, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return IntrospectionResult{}, fmt.Errorf("decode introspect response: %w", err)
	}
	span.SetAttributes(attribute.Bool("auth.token.active", result.Active))
	return result, nil
}
