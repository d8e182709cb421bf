// Package local is an identity provider that keeps email/password accounts
// in the journal's own durable storage. Federated sign in is not offered.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/mood/pkg/identity"
	"tableflip.dev/mood/pkg/store"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

type account struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Hash     string `json:"hash"`
	PhotoURL string `json:"photo,omitempty"`
}

func (a account) identity() identity.Identity {
	return identity.Identity{UID: a.UID, Name: a.Name, Email: a.Email, PhotoURL: a.PhotoURL}
}

// Provider implements identity.Provider over a store.KV.
type Provider struct {
	mu   sync.Mutex
	kv   store.KV
	cost int
}

var _ identity.Provider = (*Provider)(nil)

// New returns a provider that keeps accounts in kv.
func New(kv store.KV) *Provider {
	return &Provider{kv: kv, cost: bcrypt.DefaultCost}
}

// SignInFederated is not available locally.
func (p *Provider) SignInFederated(context.Context) (identity.Identity, error) {
	return identity.Identity{}, identity.ErrUnsupported
}

func (p *Provider) SignIn(_ context.Context, email, password string) (identity.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	accounts, err := p.accounts()
	if err != nil {
		return identity.Identity{}, err
	}
	email = normalizeEmail(email)
	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(password)); err != nil {
			return identity.Identity{}, identity.ErrInvalidCredentials
		}
		return a.identity(), nil
	}
	return identity.Identity{}, identity.ErrInvalidCredentials
}

func (p *Provider) Register(_ context.Context, name, email, password string) (identity.Identity, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		return identity.Identity{}, identity.ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return identity.Identity{}, identity.ErrWeakPassword
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	accounts, err := p.accounts()
	if err != nil {
		return identity.Identity{}, err
	}
	for _, a := range accounts {
		if a.Email == email {
			return identity.Identity{}, identity.ErrEmailInUse
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("local: hash password: %w", err)
	}
	a := account{
		UID:   uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Email: email,
		Hash:  string(hash),
	}
	accounts = append(accounts, a)
	if err := p.save(accounts); err != nil {
		return identity.Identity{}, err
	}
	return a.identity(), nil
}

func (p *Provider) UpdateDisplayName(_ context.Context, uid, name string) (identity.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	accounts, err := p.accounts()
	if err != nil {
		return identity.Identity{}, err
	}
	for i := range accounts {
		if accounts[i].UID == uid {
			accounts[i].Name = strings.TrimSpace(name)
			if err := p.save(accounts); err != nil {
				return identity.Identity{}, err
			}
			return accounts[i].identity(), nil
		}
	}
	return identity.Identity{}, identity.ErrUnknownUser
}

func (p *Provider) accounts() ([]account, error) {
	raw, ok := p.kv.Get(store.NamespaceAccounts)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var list []account
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("local: decode accounts: %v: %w", err, identity.ErrUnavailable)
	}
	return list, nil
}

func (p *Provider) save(list []account) error {
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("local: encode accounts: %w", err)
	}
	if err := p.kv.Set(store.NamespaceAccounts, string(b)); err != nil {
		return errors.Join(identity.ErrUnavailable, err)
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
