package calendar

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// Range is the lower bound of the journal view in days; AllTime has none.
type Range int

const (
	AllTime Range = 0
	Last7   Range = 7
	Last30  Range = 30
)

// ParseRange accepts the journal windows: 7 days, 30 days or all time.
func ParseRange(s string) (Range, error) {
	days, label, err := timeutil.ParseWindow(s)
	if err != nil {
		return 0, err
	}
	switch r := Range(days); r {
	case AllTime, Last7, Last30:
		return r, nil
	default:
		return 0, fmt.Errorf("unsupported range %s (expected 7d, 30d or all)", label)
	}
}

func (r Range) String() string {
	return timeutil.FormatWindow(int(r))
}

// Cutoff is the earliest day included as of today. ok is false for AllTime.
func (r Range) Cutoff(today timeutil.Day) (timeutil.Day, bool) {
	if r <= AllTime {
		return "", false
	}
	return today.AddDays(-int(r)), true
}

// Filter selects entries for the notes journal. A zero Rating matches every
// rating and an empty Search matches every note.
type Filter struct {
	Range  Range
	Search string
	Rating entry.Rating
}

// Match reports whether e belongs in the journal view. Entries without a
// note never do.
func (f Filter) Match(e entry.Entry, today timeutil.Day) bool {
	if !e.HasNote() {
		return false
	}
	if f.Rating != 0 && e.Rating != f.Rating {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" &&
		!strings.Contains(strings.ToLower(e.Note), q) {
		return false
	}
	if cutoff, ok := f.Range.Cutoff(today); ok && e.Date < cutoff {
		return false
	}
	return true
}

// Apply returns the matching entries, newest date first.
func (f Filter) Apply(entries []entry.Entry, today timeutil.Day) []entry.Entry {
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e, today) {
			out = append(out, e.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
