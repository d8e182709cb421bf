package printers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mood/pkg/calendar"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/stats"
)

const width = len("11  12  13  14  15  16  17") // an example week

var weekdays = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Month prints a Monday-first month grid. Days with an entry take the
// rating colour; today is bold and days outside the month are faint.
func (pp *PrettyPrint) Month(g calendar.Grid, cells [calendar.GridSize]calendar.DayCell, fill stats.Fill) {
	w := pp.out()
	tf := color.New(color.FgWhite, color.Italic)
	h := color.New(color.Faint)

	title := g.Title()
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), title)
	_, _ = h.Fprintln(w, strings.Join(weekdays, "  "))

	outside := color.New(color.Faint, color.FgWhite)
	empty := color.New(color.FgWhite)
	for i, c := range cells {
		p := empty
		switch {
		case !c.InMonth:
			p = outside
		case c.Entry != nil:
			p = ratingColor(c.Entry.Rating)
		}
		if c.IsToday {
			p = color.New(color.Bold, color.Underline)
			if c.Entry != nil {
				p = ratingColor(c.Entry.Rating).Add(color.Bold, color.Underline)
			}
		}
		_, _ = p.Fprintf(w, "%2d", c.Date.DayOfMonth())
		if (i+1)%7 == 0 {
			_, _ = fmt.Fprint(w, "\n")
		} else {
			_, _ = fmt.Fprint(w, "  ")
		}
	}
	_, _ = h.Fprintf(w, "\n%d of %d days logged (%.0f%%)\n\n", fill.Filled, fill.Days, fill.Rate()*100)
}

// Week prints the seven days of w with the mood of each logged day.
func (pp *PrettyPrint) Week(wk stats.Weekly) {
	w := pp.out()
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = b.Fprintf(w, "Week of %s\n", wk.Start.Human())
	for i, d := range wk.Days {
		_, _ = f.Fprintf(w, "%s %2d  ", weekdays[i], d.Date.DayOfMonth())
		if d.Entry == nil {
			_, _ = f.Fprintln(w, "·")
			continue
		}
		_, _ = fmt.Fprintln(w, pp.Mood(d.Entry.Rating))
	}
	if wk.HasAverage {
		_, _ = fmt.Fprintf(w, "\n%d/7 days, average %s\n\n", wk.Filled, pp.Mood(wk.Average))
		return
	}
	_, _ = f.Fprintf(w, "\n%d/7 days\n\n", wk.Filled)
}

const barWidth = 20

var (
	lowColor, _  = colorful.Hex("#e5484d")
	highColor, _ = colorful.Hex("#30a46c")
)

// barColor blends from red at Angry to green at Happy.
func barColor(r entry.Rating) colorful.Color {
	t := float64(r-entry.Angry) / float64(entry.Happy-entry.Angry)
	return lowColor.BlendLuv(highColor, t).Clamped()
}

func (pp *PrettyPrint) bar(r entry.Rating, percent int) string {
	n := percent * barWidth / 100
	if percent > 0 && n == 0 {
		n = 1
	}
	filled := strings.Repeat("█", n)
	rest := strings.Repeat("░", barWidth-n)
	if color.NoColor {
		return filled + rest
	}
	return lipgloss.NewStyle().Foreground(barColor(r)).Render(filled) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(rest)
}

// Profile prints the profile summary inside a bordered panel.
func (pp *PrettyPrint) Profile(name string, s stats.Summary) {
	var lines []string
	heading := lipgloss.NewStyle().Bold(true)
	if color.NoColor {
		heading = lipgloss.NewStyle()
	}
	lines = append(lines, heading.Render(name), "")
	lines = append(lines,
		fmt.Sprintf("Entries         %d", s.Total),
		fmt.Sprintf("Current streak  %d", s.CurrentStreak),
		fmt.Sprintf("Best streak     %d", s.BestStreak),
		fmt.Sprintf("This month      %d/%d", s.Month.Filled, s.Month.Days),
	)
	if s.HasDominant {
		lines = append(lines, fmt.Sprintf("Most often      %s %s", s.Dominant.Emoji(), pp.label(s.Dominant)))
	}
	if len(s.LastDays) > 0 {
		lines = append(lines, fmt.Sprintf("Last %d days     %s", len(s.LastDays), pp.strip(s.LastDays)))
	}
	lines = append(lines, "")
	for _, r := range entry.Ratings() {
		bk := s.Distribution.Get(r)
		lines = append(lines, fmt.Sprintf("%s %-7s %s %3d%%", r.Emoji(), pp.label(r), pp.bar(r, bk.Percent), bk.Percent))
	}
	if len(s.Achievements) > 0 {
		lines = append(lines, "")
		for _, a := range s.Achievements {
			lines = append(lines, pp.achievement(a))
		}
	}
	if s.HasDominant {
		if tip := stats.Suggestion(s.Dominant, pp.locale()); tip != "" {
			lines = append(lines, "", wordwrap.String(tip, noteWidth))
		}
	}

	panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	_, _ = fmt.Fprintln(pp.out(), panel.Render(strings.Join(lines, "\n")))

	if len(s.Recent) > 0 {
		pp.NewLine()
		pp.TitleWithCount("Recent", len(s.Recent))
		pp.Journal(s.Recent...)
	}
}

// strip renders one emoji per day, with a dot for days without an entry.
func (pp *PrettyPrint) strip(days []stats.WeekDay) string {
	cells := make([]string, 0, len(days))
	for _, d := range days {
		if d.Entry == nil {
			cells = append(cells, "·")
			continue
		}
		cells = append(cells, d.Entry.Rating.Emoji())
	}
	return strings.Join(cells, " ")
}

func (pp *PrettyPrint) achievement(a stats.Achievement) string {
	title := a.Title
	if pp.Local {
		title = a.LocalTitle
	}
	mark := " "
	if a.Done() {
		mark = "✓"
	}
	n := a.Percent() * barWidth / 100
	meter := strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
	if !color.NoColor {
		meter = lipgloss.NewStyle().Foreground(highColor).Render(strings.Repeat("█", n)) +
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(strings.Repeat("░", barWidth-n))
	}
	return fmt.Sprintf("%s %-18s %s %d/%d", mark, title, meter, a.Progress, a.Target)
}
