// Package auth signs the user in and out and manages the display name.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/identity"
	"tableflip.dev/mood/pkg/printers"
)

// Login signs in with email and password, or through the federated flow
// when Federated is set.
type Login struct {
	Service   *app.Service
	Email     string
	Password  string
	Federated bool
	JSON      bool
}

func (n *Login) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not sign in, no store")
	}
	var (
		id  identity.Identity
		err error
	)
	if n.Federated {
		id, err = n.Service.LoginFederated(ctx)
	} else {
		id, err = n.Service.Login(ctx, n.Email, n.Password)
	}
	if err != nil {
		return err
	}
	return welcome(n.Service, id, n.JSON)
}

// Register creates an account and signs in.
type Register struct {
	Service  *app.Service
	Name     string
	Email    string
	Password string
	JSON     bool
}

func (n *Register) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not register, no store")
	}
	id, err := n.Service.Register(ctx, n.Name, n.Email, n.Password)
	if err != nil {
		return err
	}
	return welcome(n.Service, id, n.JSON)
}

// Logout forgets the signed in identity. Entries stay on disk.
type Logout struct {
	Service *app.Service
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not sign out, no store")
	}
	if err := n.Service.Logout(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, "Signed out.")
	return nil
}

// Whoami prints the signed in identity.
type Whoami struct {
	Service *app.Service
	JSON    bool
}

func (n *Whoami) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not read session, no store")
	}
	id, err := n.Service.Whoami(ctx)
	if errors.Is(err, app.ErrSignedOut) && !n.JSON {
		_, _ = color.New(color.Faint).Fprintln(color.Output, "Not signed in.")
		return nil
	}
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.New(n.Service.Locale, false).JSON(id)
	}
	show(id)
	return nil
}

// Rename changes the display name of the signed in identity.
type Rename struct {
	Service *app.Service
	Name    string
	JSON    bool
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename, no store")
	}
	id, err := n.Service.Rename(ctx, n.Name)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.New(n.Service.Locale, false).JSON(id)
	}
	show(id)
	return nil
}

func welcome(svc *app.Service, id identity.Identity, asJSON bool) error {
	if asJSON {
		return printers.New(svc.Locale, false).JSON(id)
	}
	_, _ = color.New(color.Bold).Fprintf(color.Output, "Welcome, %s!\n", id.DisplayName())
	return nil
}

func show(id identity.Identity) {
	b := color.New(color.Bold)
	_, _ = b.Fprintln(color.Output, id.DisplayName())
	if id.Email != "" {
		_, _ = fmt.Fprintln(color.Output, id.Email)
	}
	_, _ = color.New(color.Faint).Fprintln(color.Output, id.UID)
}
