package requestctx

import (
	"context"
	"strings"
)

// RoleAdmin is the actor role allowed to manage user accounts.
const RoleAdmin = "admin"

// Actor identifies the operator behind a request.
type Actor struct {
	UserID string
	Role   string
	// AccessToken is forwarded to downstream APIs on the actor's behalf.
	AccessToken string
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(a.Role), RoleAdmin)
}

type actorContextKey struct{}

// WithActor stores the authenticated actor in context.
func WithActor(ctx context.Context, actor Actor) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext returns the actor stored in context.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	return actor, ok
}

// UserIDFromContext returns the authenticated user identifier stored in context.
func UserIDFromContext(ctx context.Context) string {
	actor, _ := ActorFromContext(ctx)
	return actor.UserID
}

// AccessTokenFromContext returns the access token stored in context.
func AccessTokenFromContext(ctx context.Context) string {
	actor, _ := ActorFromContext(ctx)
	return actor.AccessToken
}
