package stats

import (
	"sort"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// RecentLimit is how many entries a profile summary lists.
const RecentLimit = 6

// Summary is everything the profile page shows.
type Summary struct {
	Total         int
	CurrentStreak int
	BestStreak    int
	Month         Fill
	Distribution  Distribution
	Dominant      entry.Rating
	HasDominant   bool
	Recent        []entry.Entry
	LastDays      []WeekDay
	Achievements  []Achievement
}

// Profile computes a Summary as of today.
func Profile(entries []entry.Entry, today timeutil.Day) Summary {
	s := Summary{
		Total:         len(entries),
		CurrentStreak: CurrentStreak(entries, today),
		BestStreak:    BestStreak(entries),
		Month:         MonthFill(entries, today),
		Distribution:  NewDistribution(entries),
	}
	s.Dominant, s.HasDominant = Dominant(entries)
	s.Recent = Recent(entries, RecentLimit)
	s.LastDays = LastDays(entries, today, LastWindow)
	s.Achievements = Achievements(entries, today)
	return s
}

// Recent returns up to n entries, newest date first.
func Recent(entries []entry.Entry, n int) []entry.Entry {
	sorted := make([]entry.Entry, len(entries))
	for i := range entries {
		sorted[i] = entries[i].Clone()
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Face is the companion mascot expression.
type Face int

// FaceIntro is the greeting face shown before the user has checked in.
const FaceIntro Face = 0

// Rating returns the rating the face mirrors, if any.
func (f Face) Rating() (entry.Rating, bool) {
	r := entry.Rating(f)
	return r, r.Valid()
}

// Companion picks the mascot face: the intro until it has been acknowledged,
// then today's rating, then the last recorded rating, then the intro again.
func Companion(entries []entry.Entry, today timeutil.Day, last entry.Rating, introAcknowledged bool) Face {
	if !introAcknowledged {
		return FaceIntro
	}
	for _, e := range entries {
		if e.Date == today {
			return Face(e.Rating)
		}
	}
	if last.Valid() {
		return Face(last)
	}
	return FaceIntro
}
