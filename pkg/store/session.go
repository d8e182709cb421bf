package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/identity"
)

// Session keeps the lightweight per-user state that lives beside the entry
// collection: the last signed in identity, the most recent rating and
// whether the intro has been acknowledged.
type Session struct {
	kv KV
}

// NewSession wraps kv.
func NewSession(kv KV) *Session {
	return &Session{kv: kv}
}

// Identity returns the last signed in identity, if any.
func (s *Session) Identity() (identity.Identity, bool) {
	raw, ok := s.kv.Get(NamespaceIdentity)
	if !ok || raw == "" {
		return identity.Identity{}, false
	}
	var id identity.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s unreadable: %v\n", NamespaceIdentity, err)
		return identity.Identity{}, false
	}
	return id, true
}

// SetIdentity records id as the current session identity.
func (s *Session) SetIdentity(id identity.Identity) error {
	b, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("store: encode identity: %w", err)
	}
	return s.kv.Set(NamespaceIdentity, string(b))
}

// ClearIdentity forgets the session identity.
func (s *Session) ClearIdentity() error {
	return s.kv.Delete(NamespaceIdentity)
}

// LastRating returns the most recently recorded rating marker.
func (s *Session) LastRating() (entry.Rating, bool) {
	raw, ok := s.kv.Get(NamespaceLastMood)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	r := entry.Rating(n)
	return r, r.Valid()
}

// SetLastRating stores r as the most recent rating marker.
func (s *Session) SetLastRating(r entry.Rating) error {
	return s.kv.Set(NamespaceLastMood, strconv.Itoa(int(r)))
}

// IntroAcknowledged reports whether the intro has been seen.
func (s *Session) IntroAcknowledged() bool {
	raw, ok := s.kv.Get(NamespaceIntroSeen)
	return ok && raw == "1"
}

// AcknowledgeIntro marks the intro as seen.
func (s *Session) AcknowledgeIntro() error {
	return s.kv.Set(NamespaceIntroSeen, "1")
}
