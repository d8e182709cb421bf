// Package monthview is an interactive month calendar: move between days and
// months and read the entry of the selected day.
package monthview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/calendar"
	"tableflip.dev/mood/pkg/timeutil"
	"tableflip.dev/mood/pkg/tui/theme"
)

const noteWidth = 40

// Source supplies the projected grid of a month.
type Source interface {
	Month(ctx context.Context, year int, month time.Month) (app.MonthView, error)
}

type Model struct {
	ctx      context.Context
	src      Source
	today    timeutil.Day
	selected timeutil.Day
	view     app.MonthView
	local    bool
	err      error
	th       theme.Theme
}

// New opens on year/month. The selection starts on today when it falls in
// that month, otherwise on the first of the month.
func New(ctx context.Context, src Source, today timeutil.Day, year int, month time.Month) (Model, error) {
	m := Model{
		ctx:      ctx,
		src:      src,
		today:    today,
		selected: timeutil.Date(year, month, 1),
		th:       theme.Default(),
	}
	if today.SameMonth(m.selected) {
		m.selected = today
	}
	if err := m.load(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// WithLocalLabels shows the Indonesian rating names.
func (m Model) WithLocalLabels() Model {
	m.local = true
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Selected is the day under the cursor.
func (m Model) Selected() timeutil.Day {
	return m.selected
}

// Grid is the month currently shown.
func (m Model) Grid() calendar.Grid {
	return m.view.Grid
}

// Cell returns the cell of the selected day.
func (m Model) Cell() (calendar.DayCell, bool) {
	for _, c := range m.view.Cells {
		if c.Date == m.selected {
			return c, true
		}
	}
	return calendar.DayCell{}, false
}

func (m *Model) load() error {
	v, err := m.src.Month(m.ctx, m.selected.Year(), m.selected.Month())
	if err != nil {
		return err
	}
	m.view = v
	return nil
}

// moveTo selects d and reloads when it leaves the shown month.
func (m Model) moveTo(d timeutil.Day) Model {
	m.selected = d
	if d.Year() != m.view.Grid.Year || d.Month() != m.view.Grid.Month {
		m.err = m.load()
	}
	return m
}

// shiftMonth keeps the day of month where possible.
func (m Model) shiftMonth(g calendar.Grid) Model {
	day := m.selected.DayOfMonth()
	if n := timeutil.DaysIn(g.Year, g.Month); day > n {
		day = n
	}
	return m.moveTo(timeutil.Date(g.Year, g.Month, day))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "left", "h":
		return m.moveTo(m.selected.Prev()), nil
	case "right", "l":
		return m.moveTo(m.selected.Next()), nil
	case "up", "k":
		return m.moveTo(m.selected.AddDays(-7)), nil
	case "down", "j":
		return m.moveTo(m.selected.AddDays(7)), nil
	case "[", "p", "pgup":
		return m.shiftMonth(m.view.Grid.Prev()), nil
	case "]", "n", "pgdown":
		return m.shiftMonth(m.view.Grid.Next()), nil
	case "t", "home":
		return m.moveTo(m.today), nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.th.Panel.Title.Render(m.view.Grid.Title()) + "\n")
	b.WriteString(m.th.Day.Header.Render("Mo Tu We Th Fr Sa Su") + "\n")
	for i, c := range m.view.Cells {
		b.WriteString(m.renderDay(c))
		if i%7 == 6 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	f := m.view.Fill
	b.WriteString(m.th.Footer.Status.Render(fmt.Sprintf("%d of %d days logged", f.Filled, f.Days)))
	b.WriteString("\n\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.err.Error() + "\n")
	}
	b.WriteString(m.th.Footer.Help.Render("←↑↓→ move · [/] month · t today · q quit"))
	return m.th.Panel.Frame.Render(b.String()) + "\n"
}

func (m Model) renderDay(c calendar.DayCell) string {
	style := m.th.Day.Empty
	switch {
	case !c.InMonth:
		style = m.th.Day.Outside
	case c.Entry != nil:
		style = m.th.Rating(c.Entry.Rating)
	}
	if c.IsToday {
		style = style.Inherit(m.th.Day.Today)
	}
	if c.Date == m.selected {
		style = style.Inherit(m.th.Day.Selected)
	}
	return style.Render(fmt.Sprintf("%2d", c.Date.DayOfMonth()))
}

func (m Model) detail() string {
	var b strings.Builder
	b.WriteString(m.th.Panel.Title.Render(m.selected.Human()) + "\n")
	c, ok := m.Cell()
	if !ok || c.Entry == nil {
		b.WriteString(m.th.Footer.Status.Render("Nothing logged."))
		return b.String()
	}
	e := c.Entry
	label := e.Rating.Label()
	if m.local {
		label = e.Rating.Meta().LocalLabel
	}
	b.WriteString(fmt.Sprintf("%s %s", e.Rating.Emoji(), m.th.Rating(e.Rating).Render(" "+label+" ")))
	if e.Energy != nil {
		b.WriteString(fmt.Sprintf("  energy %d", *e.Energy))
	}
	if e.Stress != nil {
		b.WriteString(fmt.Sprintf("  stress %d", *e.Stress))
	}
	if tags := append(append([]string{}, e.Emotions...), e.Activities...); len(tags) > 0 {
		b.WriteString("\n" + m.th.Footer.Status.Render(strings.Join(tags, ", ")))
	}
	if e.HasNote() {
		b.WriteString("\n" + wordwrap.String(e.Note, noteWidth))
	}
	return b.String()
}

// Run shows the calendar until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
