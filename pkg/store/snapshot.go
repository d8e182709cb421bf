package store

import (
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// Snapshot is an immutable view of the entry collection at one point in
// time. Accessors return copies, so callers cannot reach the store's state.
type Snapshot struct {
	entries []entry.Entry
	byDate  map[timeutil.Day]int
	byID    map[string]int
}

func newSnapshot(list []entry.Entry) Snapshot {
	s := Snapshot{
		entries: cloneAll(list),
		byDate:  make(map[timeutil.Day]int, len(list)),
		byID:    make(map[string]int, len(list)),
	}
	for i, e := range s.entries {
		s.byDate[e.Date] = i
		s.byID[e.ID] = i
	}
	return s
}

// Len is the number of entries.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns every entry sorted by date ascending.
func (s Snapshot) Entries() []entry.Entry {
	return cloneAll(s.entries)
}

// Lookup returns the entry recorded for day.
func (s Snapshot) Lookup(day timeutil.Day) (entry.Entry, bool) {
	i, ok := s.byDate[day]
	if !ok {
		return entry.Entry{}, false
	}
	return s.entries[i].Clone(), true
}

// Find returns the entry with id.
func (s Snapshot) Find(id string) (entry.Entry, bool) {
	i, ok := s.byID[id]
	if !ok {
		return entry.Entry{}, false
	}
	return s.entries[i].Clone(), true
}
