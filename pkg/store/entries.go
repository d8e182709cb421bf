package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// Entries owns the mood entry collection. It keeps at most one entry per
// day, writes the whole collection through to KV after every mutation and
// notifies subscribers with the new snapshot.
type Entries struct {
	mu        sync.Mutex
	kv        KV
	namespace string
	entries   []entry.Entry
	snap      Snapshot

	subs    map[int]func(Snapshot)
	nextSub int

	newID func() string
}

// OpenEntries loads the collection stored in kv. A missing or unreadable
// payload yields an empty collection. Records stored without an id get one,
// and the collection is written back so the ids survive the next open.
func OpenEntries(kv KV) *Entries {
	s := &Entries{
		kv:        kv,
		namespace: NamespaceEntries,
		subs:      make(map[int]func(Snapshot)),
		newID:     func() string { return uuid.NewString() },
	}
	list, err := s.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %s unreadable, starting empty: %v\n", s.namespace, err)
	}
	s.entries = list
	s.snap = newSnapshot(s.entries)
	return s
}

// Snapshot returns the current immutable view of the collection.
func (s *Entries) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe registers fn to be called after every mutation or reload. The
// returned func removes the subscription.
func (s *Entries) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// AddOrMerge merges p into the entry for day, or creates one when the day
// has none. The id and date of an existing entry are preserved.
func (s *Entries) AddOrMerge(day timeutil.Day, p entry.Patch) (entry.Entry, error) {
	var out entry.Entry
	err := s.mutate(func(list []entry.Entry) ([]entry.Entry, bool) {
		for i := range list {
			if list[i].Date == day {
				p.ApplyTo(&list[i])
				out = list[i].Clone()
				return list, true
			}
		}
		e := entry.New(s.newID(), day, p)
		out = e.Clone()
		return append(list, e), true
	})
	return out, err
}

// Update applies p to the entry with id. Unknown ids and empty patches are
// no-ops and report ok=false.
func (s *Entries) Update(id string, p entry.Patch) (entry.Entry, bool, error) {
	if p.Empty() {
		e, _ := s.Snapshot().Find(id)
		return e, false, nil
	}
	var (
		out   entry.Entry
		found bool
	)
	err := s.mutate(func(list []entry.Entry) ([]entry.Entry, bool) {
		for i := range list {
			if list[i].ID == id {
				p.ApplyTo(&list[i])
				out = list[i].Clone()
				found = true
				return list, true
			}
		}
		return list, false
	})
	return out, found, err
}

// ClearNote empties the note of the entry with id while keeping the entry.
func (s *Entries) ClearNote(id string) (entry.Entry, bool, error) {
	return s.Update(id, entry.Patch{}.WithNote(""))
}

// Remove deletes the entry with id. Unknown ids are a no-op.
func (s *Entries) Remove(id string) (bool, error) {
	var found bool
	err := s.mutate(func(list []entry.Entry) ([]entry.Entry, bool) {
		for i := range list {
			if list[i].ID == id {
				found = true
				return append(list[:i], list[i+1:]...), true
			}
		}
		return list, false
	})
	return found, err
}

// Reload re-reads the collection from KV and notifies subscribers. An
// unreadable payload leaves the current collection in place and is returned
// as an error; only opening the store degrades to empty.
func (s *Entries) Reload() error {
	s.mu.Lock()
	list, err := s.load()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("store: reload %s: %w", s.namespace, err)
	}
	s.entries = list
	s.snap = newSnapshot(s.entries)
	snap, subs := s.snap, s.subscribers()
	s.mu.Unlock()
	notify(subs, snap)
	return nil
}

// mutate runs fn over a working copy of the collection. When fn reports a
// change the copy is persisted; on a write failure the previous collection
// stays in place.
func (s *Entries) mutate(fn func([]entry.Entry) ([]entry.Entry, bool)) error {
	s.mu.Lock()
	work := cloneAll(s.entries)
	next, changed := fn(work)
	if !changed {
		s.mu.Unlock()
		return nil
	}
	sortByDate(next)
	if err := s.persist(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.entries = next
	s.snap = newSnapshot(next)
	snap, subs := s.snap, s.subscribers()
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

func (s *Entries) subscribers() []func(Snapshot) {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		out = append(out, s.subs[id])
	}
	return out
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}

// payload is the persisted envelope of the collection.
type payload struct {
	State struct {
		Entries []entry.Entry `json:"entries"`
	} `json:"state"`
	Version int `json:"version"`
}

// Marshal encodes entries in the persisted envelope.
func Marshal(entries []entry.Entry) ([]byte, error) {
	var p payload
	p.State.Entries = entries
	if p.State.Entries == nil {
		p.State.Entries = []entry.Entry{}
	}
	return json.Marshal(p)
}

// Unmarshal decodes either the persisted envelope or a bare entry array.
func Unmarshal(data []byte) ([]entry.Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("store: empty payload")
	}
	if trimmed[0] == '[' {
		var list []entry.Entry
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var p payload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, err
	}
	return p.State.Entries, nil
}

func (s *Entries) persist(list []entry.Entry) error {
	data, err := Marshal(list)
	if err != nil {
		return fmt.Errorf("store: encode entries: %w", err)
	}
	return s.kv.Set(s.namespace, string(data))
}

// load reads and sanitizes the stored collection. A missing namespace is an
// empty collection; an unreadable one is an error.
func (s *Entries) load() ([]entry.Entry, error) {
	raw, ok := s.kv.Get(s.namespace)
	if !ok {
		return nil, nil
	}
	list, err := Unmarshal([]byte(raw))
	if err != nil {
		return nil, err
	}
	list, assigned := s.sanitize(list)
	if assigned {
		if err := s.persist(list); err != nil {
			fmt.Fprintf(os.Stderr, "store: saving assigned ids: %v\n", err)
		}
	}
	return list, nil
}

// sanitize drops malformed records and keeps the last record for any date
// that appears more than once. assigned reports whether a record without an
// id was given one.
func (s *Entries) sanitize(list []entry.Entry) (out []entry.Entry, assigned bool) {
	byDate := make(map[timeutil.Day]int, len(list))
	out = make([]entry.Entry, 0, len(list))
	for _, e := range list {
		if !e.Date.Valid() || !e.Rating.Valid() {
			fmt.Fprintf(os.Stderr, "store: skipping malformed entry %q\n", e.ID)
			continue
		}
		if e.ID == "" {
			e.ID = s.newID()
			assigned = true
		}
		if i, dup := byDate[e.Date]; dup {
			out[i] = e
			continue
		}
		byDate[e.Date] = len(out)
		out = append(out, e)
	}
	sortByDate(out)
	return out, assigned
}

func cloneAll(list []entry.Entry) []entry.Entry {
	out := make([]entry.Entry, len(list))
	for i := range list {
		out[i] = list[i].Clone()
	}
	return out
}

func sortByDate(list []entry.Entry) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date < list[j].Date
	})
}
