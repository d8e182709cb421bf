package app

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/mood/pkg/identity"
)

// AuthError carries a provider failure together with the short localized
// message shown to the user.
type AuthError struct {
	Err     error
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

func (s *Service) authFailed(err error) error {
	return &AuthError{Err: err, Message: identity.Message(err, s.Locale)}
}

func (s *Service) signedIn(id identity.Identity, err error) (identity.Identity, error) {
	if err != nil {
		return identity.Identity{}, s.authFailed(err)
	}
	if s.Session != nil {
		if err := s.Session.SetIdentity(id); err != nil {
			return identity.Identity{}, err
		}
	}
	return id, nil
}

// Login signs in with email and password and remembers the identity.
func (s *Service) Login(ctx context.Context, email, password string) (identity.Identity, error) {
	if s.Identity == nil {
		return identity.Identity{}, ErrNoIdentity
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return identity.Identity{}, s.authFailed(identity.ErrInvalidCredentials)
	}
	return s.signedIn(s.Identity.SignIn(ctx, email, password))
}

// LoginFederated signs in through the provider's federated flow.
func (s *Service) LoginFederated(ctx context.Context) (identity.Identity, error) {
	if s.Identity == nil {
		return identity.Identity{}, ErrNoIdentity
	}
	return s.signedIn(s.Identity.SignInFederated(ctx))
}

// Register creates an account and signs it in.
func (s *Service) Register(ctx context.Context, name, email, password string) (identity.Identity, error) {
	if s.Identity == nil {
		return identity.Identity{}, ErrNoIdentity
	}
	return s.signedIn(s.Identity.Register(ctx, strings.TrimSpace(name), strings.TrimSpace(email), password))
}

// Logout forgets the session identity. Entries are left untouched.
func (s *Service) Logout(ctx context.Context) error {
	if s.Session == nil {
		return ErrNoStore
	}
	return s.Session.ClearIdentity()
}

// Whoami returns the session identity.
func (s *Service) Whoami(ctx context.Context) (identity.Identity, error) {
	if s.Session == nil {
		return identity.Identity{}, ErrNoStore
	}
	id, ok := s.Session.Identity()
	if !ok {
		return identity.Identity{}, ErrSignedOut
	}
	return id, nil
}

// Rename changes the display name of the signed in identity.
func (s *Service) Rename(ctx context.Context, name string) (identity.Identity, error) {
	if s.Identity == nil {
		return identity.Identity{}, ErrNoIdentity
	}
	current, err := s.Whoami(ctx)
	if err != nil {
		return identity.Identity{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return identity.Identity{}, errors.New("app: name required")
	}
	return s.signedIn(s.Identity.UpdateDisplayName(ctx, current.UID, name))
}
