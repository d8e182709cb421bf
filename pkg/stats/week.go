package stats

import (
	"math"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// WeekDay is one day of the weekly strip.
type WeekDay struct {
	Date  timeutil.Day
	Entry *entry.Entry
}

// Weekly is the Monday-first seven day window containing a day.
type Weekly struct {
	Start      timeutil.Day
	Days       [7]WeekDay
	Filled     int
	Average    entry.Rating
	HasAverage bool
}

// Week projects entries onto the week containing today. Average is the
// rounded mean of the ratings present; HasAverage is false when no day in
// the window has an entry.
func Week(entries []entry.Entry, today timeutil.Day) Weekly {
	byDate := make(map[timeutil.Day]entry.Entry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}

	w := Weekly{Start: today.Monday()}
	sum := 0
	for i := range w.Days {
		d := w.Start.AddDays(i)
		w.Days[i].Date = d
		if e, ok := byDate[d]; ok {
			c := e.Clone()
			w.Days[i].Entry = &c
			sum += int(e.Rating)
			w.Filled++
		}
	}
	if w.Filled > 0 {
		w.Average = entry.Rating(math.Round(float64(sum) / float64(w.Filled)))
		w.HasAverage = true
	}
	return w
}
