package requestctx

import (
	"context"
	"testing"
)

func TestActorFromContextRoundTrip(t *testing.T) {
	ctx := WithActor(context.Background(), Actor{UserID: "user-42", Role: "admin", AccessToken: "tok"})
	actor, ok := ActorFromContext(ctx)
	if !ok {
		t.Fatal("expected actor in context")
	}
	if actor.UserID != "user-42" {
		t.Fatalf("UserID = %q, want %q", actor.UserID, "user-42")
	}
	if got := UserIDFromContext(ctx); got != "user-42" {
		t.Fatalf("UserIDFromContext = %q, want %q", got, "user-42")
	}
	if got := AccessTokenFromContext(ctx); got != "tok" {
		t.Fatalf("AccessTokenFromContext = %q, want %q", got, "tok")
	}
}

func TestActorFromContextEmpty(t *testing.T) {
	if _, ok := ActorFromContext(context.Background()); ok {
		t.Fatal("expected no actor")
	}
	if got := UserIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestActorFromContextNil(t *testing.T) {
	if _, ok := ActorFromContext(nil); ok {
		t.Fatal("expected no actor for nil context")
	}
}

func TestWithActorNilContext(t *testing.T) {
	ctx := WithActor(nil, Actor{UserID: "user-99"})
	if ctx == nil {
		t.Fatalf("expected non-nil context")
	}
	if got := UserIDFromContext(ctx); got != "user-99" {
		t.Fatalf("UserIDFromContext = %q, want %q", got, "user-99")
	}
}

func TestActorIsAdmin(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{role: "admin", want: true},
		{role: " Admin ", want: true},
		{role: "user", want: false},
		{role: "", want: false},
	}
	for _, tc := range tests {
		if got := (Actor{Role: tc.role}).IsAdmin(); got != tc.want {
			t.Fatalf("IsAdmin(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
