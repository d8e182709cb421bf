// Package stats derives streaks, distributions and weekly aggregates from a
// snapshot of mood entries. Every function is pure and recomputes from its
// input; nothing is cached.
package stats

import (
	"math"
	"sort"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

func dateSet(entries []entry.Entry) map[timeutil.Day]struct{} {
	set := make(map[timeutil.Day]struct{}, len(entries))
	for _, e := range entries {
		set[e.Date] = struct{}{}
	}
	return set
}

// CurrentStreak counts consecutive days with an entry, walking back from
// today. It is zero when today has no entry.
func CurrentStreak(entries []entry.Entry, today timeutil.Day) int {
	set := dateSet(entries)
	streak := 0
	for d := today; ; d = d.Prev() {
		if _, ok := set[d]; !ok {
			return streak
		}
		streak++
	}
}

// BestStreak is the longest run of exactly consecutive entry dates.
func BestStreak(entries []entry.Entry) int {
	set := dateSet(entries)
	if len(set) == 0 {
		return 0
	}
	dates := make([]timeutil.Day, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	best, cur := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i-1].Next() == dates[i] {
			cur++
		} else {
			cur = 1
		}
		if cur > best {
			best = cur
		}
	}
	return best
}

// Fill is the number of distinct days with an entry in a month.
type Fill struct {
	Filled int
	Days   int
}

// Rate is Filled/Days, in [0,1].
func (f Fill) Rate() float64 {
	if f.Days == 0 {
		return 0
	}
	return float64(f.Filled) / float64(f.Days)
}

// MonthFill reports how many days of today's month have an entry.
func MonthFill(entries []entry.Entry, today timeutil.Day) Fill {
	filled := 0
	for d := range dateSet(entries) {
		if d.SameMonth(today) {
			filled++
		}
	}
	return Fill{Filled: filled, Days: timeutil.DaysIn(today.Year(), today.Month())}
}

// Bucket is the share of one rating.
type Bucket struct {
	Rating  entry.Rating
	Count   int
	Percent int
}

// Distribution holds one bucket per rating in scale order.
type Distribution struct {
	Total   int
	Buckets [5]Bucket
}

// Get returns the bucket for r.
func (d Distribution) Get(r entry.Rating) Bucket {
	if !r.Valid() {
		return Bucket{Rating: r}
	}
	return d.Buckets[int(r)-1]
}

// NewDistribution counts entries per rating. Percentages are rounded
// individually and may not sum to exactly 100.
func NewDistribution(entries []entry.Entry) Distribution {
	var d Distribution
	for i, r := range entry.Ratings() {
		d.Buckets[i].Rating = r
	}
	for _, e := range entries {
		if !e.Rating.Valid() {
			continue
		}
		d.Buckets[int(e.Rating)-1].Count++
		d.Total++
	}
	if d.Total == 0 {
		return d
	}
	for i := range d.Buckets {
		d.Buckets[i].Percent = int(math.Round(float64(d.Buckets[i].Count) / float64(d.Total) * 100))
	}
	return d
}

// Dominant returns the most frequent rating; ties go to the earliest rating
// in scale order. ok is false for an empty collection.
func Dominant(entries []entry.Entry) (entry.Rating, bool) {
	d := NewDistribution(entries)
	if d.Total == 0 {
		return 0, false
	}
	best := d.Buckets[0]
	for _, b := range d.Buckets[1:] {
		if b.Count > best.Count {
			best = b
		}
	}
	return best.Rating, true
}
