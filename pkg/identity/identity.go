// Package identity describes the external identity provider the journal
// delegates sign in to, and the errors it may surface to the user.
package identity

import (
	"context"
	"errors"
	"strings"
)

// Identity is the normalized record returned by a provider.
type Identity struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo,omitempty"`
}

// DisplayName falls back to the local part of the email, then to a generic
// name, when the provider has no display name.
func (i Identity) DisplayName() string {
	if n := strings.TrimSpace(i.Name); n != "" {
		return n
	}
	if at := strings.Index(i.Email, "@"); at > 0 {
		return i.Email[:at]
	}
	return "User"
}

// Provider is the sign in capability. Credential storage, token refresh and
// session validation all belong to the provider.
type Provider interface {
	SignInFederated(ctx context.Context) (Identity, error)
	SignIn(ctx context.Context, email, password string) (Identity, error)
	Register(ctx context.Context, name, email, password string) (Identity, error)
	UpdateDisplayName(ctx context.Context, uid, name string) (Identity, error)
}

var (
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrEmailInUse         = errors.New("identity: email already registered")
	ErrWeakPassword       = errors.New("identity: password too weak")
	ErrInvalidEmail       = errors.New("identity: invalid email")
	ErrUnsupported        = errors.New("identity: sign in method not supported")
	ErrUnavailable        = errors.New("identity: provider unavailable")
	ErrUnknownUser        = errors.New("identity: unknown user")
)
