// Package entry defines the mood entry, its rating scale and partial updates.
package entry

import (
	"tableflip.dev/mood/pkg/timeutil"
)

// Entry is one mood record for a single calendar day.
type Entry struct {
	ID         string       `json:"id"`
	Date       timeutil.Day `json:"date"`
	Rating     Rating       `json:"rating"`
	Note       string       `json:"note"`
	Energy     *int         `json:"energy,omitempty"`
	Stress     *int         `json:"stress,omitempty"`
	Emotions   []string     `json:"emotions,omitempty"`
	Activities []string     `json:"activities,omitempty"`
}

// New creates an entry for date from the fields present in p. Absent fields
// take the creation defaults: DefaultRating, an empty note, no energy or
// stress and no tags.
func New(id string, date timeutil.Day, p Patch) Entry {
	e := Entry{
		ID:     id,
		Date:   date,
		Rating: DefaultRating,
	}
	p.ApplyTo(&e)
	return e
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	c := e
	if e.Energy != nil {
		v := *e.Energy
		c.Energy = &v
	}
	if e.Stress != nil {
		v := *e.Stress
		c.Stress = &v
	}
	if e.Emotions != nil {
		c.Emotions = append([]string{}, e.Emotions...)
	}
	if e.Activities != nil {
		c.Activities = append([]string{}, e.Activities...)
	}
	return c
}

// HasNote reports whether the note holds anything but whitespace.
func (e Entry) HasNote() bool {
	for _, r := range e.Note {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			return true
		}
	}
	return false
}

// Equal compares every field of e and o.
func (e Entry) Equal(o Entry) bool {
	if e.ID != o.ID || e.Date != o.Date || e.Rating != o.Rating || e.Note != o.Note {
		return false
	}
	if !equalInt(e.Energy, o.Energy) || !equalInt(e.Stress, o.Stress) {
		return false
	}
	return equalStrings(e.Emotions, o.Emotions) && equalStrings(e.Activities, o.Activities)
}

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Int is a helper for building optional metric fields.
func Int(v int) *int { return &v }

// String is a helper for building optional string fields.
func String(v string) *string { return &v }
