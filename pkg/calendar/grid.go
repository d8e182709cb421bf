// Package calendar projects mood entries onto month grids and filters the
// notes journal.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// GridSize is six Monday-first weeks.
const GridSize = 42

// Cell is one day of a month grid.
type Cell struct {
	Date    timeutil.Day
	InMonth bool
}

// Grid is a month view padded with days of the adjacent months.
type Grid struct {
	Year  int
	Month time.Month
	Cells [GridSize]Cell
}

// BuildMonthGrid lays out year/month on a fixed 42 cell grid, starting on
// the Monday on or before the first of the month.
func BuildMonthGrid(year int, month time.Month) Grid {
	first := timeutil.Date(year, month, 1)
	g := Grid{Year: first.Year(), Month: first.Month()}
	start := first.Monday()
	for i := range g.Cells {
		d := start.AddDays(i)
		g.Cells[i] = Cell{
			Date:    d,
			InMonth: d.SameMonth(first),
		}
	}
	return g
}

// Title renders "October 2026".
func (g Grid) Title() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// Prev returns the grid of the previous month.
func (g Grid) Prev() Grid {
	return BuildMonthGrid(g.Year, g.Month-1)
}

// Next returns the grid of the following month.
func (g Grid) Next() Grid {
	return BuildMonthGrid(g.Year, g.Month+1)
}

// DayCell is a grid cell with its entry, if one exists.
type DayCell struct {
	Cell
	IsToday bool
	Entry   *entry.Entry
}

// Lookup finds the entry recorded for a day.
type Lookup interface {
	Lookup(day timeutil.Day) (entry.Entry, bool)
}

// Project attaches entries to the cells of g by date key.
func Project(g Grid, entries Lookup, today timeutil.Day) [GridSize]DayCell {
	var out [GridSize]DayCell
	for i, c := range g.Cells {
		out[i] = DayCell{Cell: c, IsToday: c.Date == today}
		if e, ok := entries.Lookup(c.Date); ok {
			out[i].Entry = &e
		}
	}
	return out
}

// Index maps a slice of entries by date, satisfying Lookup.
type Index map[timeutil.Day]entry.Entry

// NewIndex builds an Index over entries.
func NewIndex(entries []entry.Entry) Index {
	idx := make(Index, len(entries))
	for _, e := range entries {
		idx[e.Date] = e
	}
	return idx
}

func (idx Index) Lookup(day timeutil.Day) (entry.Entry, bool) {
	e, ok := idx[day]
	if !ok {
		return entry.Entry{}, false
	}
	return e.Clone(), true
}

// ParseMonth reads YYYY-MM or "January 2006", falling back to the month of
// today when empty.
func ParseMonth(input string, today timeutil.Day) (int, time.Month, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return today.Year(), today.Month(), nil
	}
	for _, layout := range []string{"2006-01", "2006-1", "January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, input); err == nil {
			return t.Year(), t.Month(), nil
		}
	}
	return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", input)
}
