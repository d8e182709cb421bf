package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/mood/pkg/entry"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Panel  PanelTheme
	Footer FooterTheme
	Choice ChoiceTheme
	Day    DayTheme
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// FooterTheme groups styles used by the bottom help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ChoiceTheme styles a row of selectable options.
type ChoiceTheme struct {
	Selected lipgloss.Style
	Idle     lipgloss.Style
}

// DayTheme styles calendar cells.
type DayTheme struct {
	Header   lipgloss.Style
	Outside  lipgloss.Style
	Empty    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// ratingColors follows the red to green scale of the printed calendar.
var ratingColors = map[entry.Rating]string{
	entry.Angry:  "#e5484d",
	entry.Sad:    "#f76b15",
	entry.Afraid: "#ffc53d",
	entry.Calm:   "#3e63dd",
	entry.Happy:  "#30a46c",
}

// Rating returns the cell style of a logged day.
func (t Theme) Rating(r entry.Rating) lipgloss.Style {
	c, ok := ratingColors[r]
	if !ok {
		return t.Day.Empty
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(c))
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Choice: ChoiceTheme{
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Idle:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Day: DayTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Outside:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Reverse(true).Bold(true),
		},
	}
}
