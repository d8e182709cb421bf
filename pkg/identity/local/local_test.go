package local

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/mood/pkg/identity"
	"tableflip.dev/mood/pkg/store"
)

func newTestProvider() *Provider {
	p := New(store.NewMemory(nil))
	p.cost = bcrypt.MinCost
	return p
}

func TestRegisterAndSignIn(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	reg, err := p.Register(ctx, "Ayu", " Ayu@Example.com ", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.UID == "" || reg.Email != "ayu@example.com" || reg.Name != "Ayu" {
		t.Fatalf("unexpected identity %+v", reg)
	}

	got, err := p.SignIn(ctx, "ayu@example.com", "secret1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if got != reg {
		t.Fatalf("expected %+v, got %+v", reg, got)
	}

	if _, err := p.SignIn(ctx, "ayu@example.com", "nope"); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := p.SignIn(ctx, "who@example.com", "secret1"); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestRegisterRejects(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()
	if _, err := p.Register(ctx, "A", "a@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		email, password string
		want            error
	}{
		{"a@example.com", "another1", identity.ErrEmailInUse},
		{"b@example.com", "123", identity.ErrWeakPassword},
		{"not-an-email", "secret1", identity.ErrInvalidEmail},
	}
	for _, tt := range tests {
		if _, err := p.Register(ctx, "X", tt.email, tt.password); !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.email, tt.want, err)
		}
	}
}

func TestUpdateDisplayName(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()
	reg, err := p.Register(ctx, "", "c@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := p.UpdateDisplayName(ctx, reg.UID, "  Citra ")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if got.Name != "Citra" {
		t.Fatalf("expected Citra, got %q", got.Name)
	}
	if _, err := p.UpdateDisplayName(ctx, "missing", "x"); !errors.Is(err, identity.ErrUnknownUser) {
		t.Fatalf("expected unknown user, got %v", err)
	}
}

func TestFederatedUnsupported(t *testing.T) {
	if _, err := newTestProvider().SignInFederated(context.Background()); !errors.Is(err, identity.ErrUnsupported) {
		t.Fatalf("expected unsupported, got %v", err)
	}
}
