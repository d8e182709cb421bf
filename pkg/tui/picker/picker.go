// Package picker is a small interactive chooser for a mood rating and an
// optional note.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/tui/theme"
)

// ErrCancelled is returned by Run when the user leaves without choosing.
var ErrCancelled = errors.New("picker: cancelled")

type stage int

const (
	stageRating stage = iota
	stageNote
)

// Choice is what the user picked.
type Choice struct {
	Rating entry.Rating
	Note   string
	// HasNote is false when the note step was skipped.
	HasNote bool
}

type Model struct {
	ratings   []entry.Rating
	cursor    int
	stage     stage
	askNote   bool
	note      textinput.Model
	local     bool
	done      bool
	cancelled bool
}

// New starts on initial, or the default rating when initial is not valid.
// When askNote is set, choosing a rating moves on to a note field prefilled
// with note.
func New(initial entry.Rating, askNote bool, note string) Model {
	if !initial.Valid() {
		initial = entry.DefaultRating
	}
	ti := textinput.New()
	ti.Placeholder = "How was your day? (enter to save)"
	ti.CharLimit = 1024
	ti.Prompt = "✎ "
	ti.SetValue(note)

	m := Model{
		ratings: entry.Ratings(),
		askNote: askNote,
		note:    ti,
	}
	for i, r := range m.ratings {
		if r == initial {
			m.cursor = i
		}
	}
	return m
}

// WithLocalLabels shows the Indonesian rating names.
func (m Model) WithLocalLabels() Model {
	m.local = true
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Selected is the rating under the cursor.
func (m Model) Selected() entry.Rating {
	return m.ratings[m.cursor]
}

// Result reports the choice once the picker has finished.
func (m Model) Result() (Choice, bool) {
	if !m.done || m.cancelled {
		return Choice{}, false
	}
	c := Choice{Rating: m.Selected()}
	if m.askNote {
		c.Note = strings.TrimSpace(m.note.Value())
		c.HasNote = true
	}
	return c, true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if m.stage == stageNote {
			var cmd tea.Cmd
			m.note, cmd = m.note.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.String() == "ctrl+c" {
		m.cancelled = true
		return m, tea.Quit
	}

	switch m.stage {
	case stageRating:
		switch k := key.String(); k {
		case "left", "h", "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l", "down", "j":
			if m.cursor < len(m.ratings)-1 {
				m.cursor++
			}
		case "1", "2", "3", "4", "5":
			m.cursor = int(k[0] - '1')
		case "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "enter", " ", "space":
			if !m.askNote {
				m.done = true
				return m, tea.Quit
			}
			m.stage = stageNote
			m.note.CursorEnd()
			return m, m.note.Focus()
		}
	case stageNote:
		switch key.String() {
		case "enter":
			m.done = true
			m.note.Blur()
			return m, tea.Quit
		case "esc":
			m.stage = stageRating
			m.note.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}
	th := theme.Default()
	var b strings.Builder
	b.WriteString(th.Panel.Title.Render("How are you feeling?") + "\n\n")
	for i, r := range m.ratings {
		label := r.Label()
		if m.local {
			label = r.Meta().LocalLabel
		}
		cell := fmt.Sprintf("%s %s", r.Emoji(), label)
		if i == m.cursor {
			b.WriteString(th.Choice.Selected.Render("[" + cell + "]"))
		} else {
			b.WriteString(th.Choice.Idle.Render(" " + cell + " "))
		}
		if i < len(m.ratings)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")
	if m.stage == stageNote {
		b.WriteString("\n" + m.note.View() + "\n")
		b.WriteString(th.Footer.Help.Render("enter save · esc back"))
	} else {
		b.WriteString(th.Footer.Help.Render("←/→ or 1-5 choose · enter select · esc cancel"))
	}
	return th.Panel.Frame.Render(b.String()) + "\n"
}

// Run shows the picker on the terminal and returns the user's choice.
func Run(m Model) (Choice, error) {
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return Choice{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Choice{}, ErrCancelled
	}
	c, ok := fm.Result()
	if !ok {
		return Choice{}, ErrCancelled
	}
	return c, nil
}
