package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/stats"
)

type PrettyPrint struct {
	ShowID bool
	// Local switches rating labels to the Indonesian names.
	Local bool
	Out   io.Writer
}

var (
	spacing = strings.Repeat(" ", len("8f1c2a3b-5d6e-4f70-8a9b-0c1d2e3f4a5b  "))
)

const noteWidth = 64

// New returns a printer for locale; "id" switches labels to Indonesian.
func New(locale string, showID bool) *PrettyPrint {
	return &PrettyPrint{ShowID: showID, Local: locale == "id"}
}

// ConfigureColor turns colour off when forced or when stdout is not a
// terminal.
func ConfigureColor(disable bool) {
	fd := os.Stdout.Fd()
	if disable || (!isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) locale() string {
	if pp.Local {
		return "id"
	}
	return "en"
}

func (pp *PrettyPrint) label(r entry.Rating) string {
	return r.LabelIn(pp.locale())
}

// Mood renders "😋 Happy" in the rating colour.
func (pp *PrettyPrint) Mood(r entry.Rating) string {
	return ratingColor(r).Sprintf("%s %s", r.Emoji(), pp.label(r))
}

func ratingColor(r entry.Rating) *color.Color {
	switch r {
	case entry.Angry:
		return color.New(color.FgRed)
	case entry.Sad:
		return color.New(color.FgBlue)
	case entry.Afraid:
		return color.New(color.FgMagenta)
	case entry.Calm:
		return color.New(color.FgCyan)
	case entry.Happy:
		return color.New(color.FgGreen)
	}
	return color.New(color.Faint)
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Journal prints entries in the given order with their notes wrapped under
// the heading line.
func (pp *PrettyPrint) Journal(entries ...entry.Entry) {
	w := pp.out()
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	d := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	pad := 2
	if pp.ShowID {
		pad = len(spacing)
	}

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Fprint(w, e.ID)
			_, _ = y.Fprint(w, strings.Repeat(" ", len(spacing)-len(e.ID)))
		}
		_, _ = d.Fprint(w, e.Date.Human())
		_, _ = fmt.Fprintf(w, "  %s\n", pp.Mood(e.Rating))
		if e.HasNote() {
			_, _ = fmt.Fprintln(w, indent.String(wordwrap.String(strings.TrimSpace(e.Note), noteWidth), uint(pad)))
		}
	}
	_, _ = fmt.Fprintln(w, "")
}

// Entry prints every field of e.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	b := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = noteWidth
	tbl.AddRow(b.Sprint("Date"), e.Date.Human())
	tbl.AddRow(b.Sprint("Mood"), pp.Mood(e.Rating))
	if e.Energy != nil {
		tbl.AddRow(b.Sprint("Energy"), fmt.Sprintf("%d%%", *e.Energy))
	}
	if e.Stress != nil {
		tbl.AddRow(b.Sprint("Stress"), fmt.Sprintf("%d%%", *e.Stress))
	}
	if len(e.Emotions) > 0 {
		tbl.AddRow(b.Sprint("Emotions"), strings.Join(e.Emotions, ", "))
	}
	if len(e.Activities) > 0 {
		tbl.AddRow(b.Sprint("Activities"), strings.Join(e.Activities, ", "))
	}
	if e.HasNote() {
		tbl.AddRow(b.Sprint("Note"), strings.TrimSpace(e.Note))
	}
	if pp.ShowID {
		tbl.AddRow(b.Sprint("ID"), e.ID)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Key prints the rating legend.
func (pp *PrettyPrint) Key() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Rating"), bold.Sprint("Mood"), bold.Sprint("Label"), bold.Sprint("Tone"))
	for _, r := range entry.Ratings() {
		m := r.Meta()
		tone := "positive"
		if m.Negative {
			tone = "negative"
		}
		tbl.AddRow(fmt.Sprint(int(r)), m.Emoji, ratingColor(r).Sprintf("%s / %s", m.Label, m.LocalLabel), tone)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Companion prints the mascot line for face.
func (pp *PrettyPrint) Companion(face stats.Face) {
	w := pp.out()
	r, ok := face.Rating()
	if !ok {
		_, _ = color.New(color.Italic).Fprintln(w, "👋 Hi! How are you feeling today? Log a mood with `mood add`.")
		return
	}
	line := "Keep going, one day at a time."
	if r.Negative() {
		line = "Rough day? Writing a note can help."
	}
	_, _ = fmt.Fprintf(w, "%s  %s\n", pp.Mood(r), color.New(color.Italic).Sprint(line))
}
