package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/timeutil"
	"tableflip.dev/mood/pkg/tui/picker"
)

// Add records a mood for a day, merging into the day's entry when one exists.
type Add struct {
	Service     *app.Service
	Day         timeutil.Day
	Patch       entry.Patch
	Interactive bool
	JSON        bool
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no store")
	}
	if n.Day == "" {
		n.Day = n.Service.Today()
	}

	if n.Interactive {
		ok, err := n.pick(ctx)
		if err != nil || !ok {
			return err
		}
	}

	e, err := n.Service.LogMood(ctx, n.Day, n.Patch)
	if err != nil {
		return err
	}

	pp := printers.New(n.Service.Locale, false)
	if n.JSON {
		return pp.JSON(e)
	}
	pp.Title("Logged")
	pp.Entry(e)
	if face, err := n.Service.Companion(ctx); err == nil {
		pp.Companion(face)
	}
	return nil
}

// pick asks for the rating and note, starting from what is already known for
// the day.
func (n *Add) pick(ctx context.Context) (bool, error) {
	initial := entry.DefaultRating
	note := ""
	if existing, ok, err := n.Service.Get(ctx, n.Day); err != nil {
		return false, err
	} else if ok {
		initial, note = existing.Rating, existing.Note
	}
	if n.Patch.Rating != nil {
		initial = *n.Patch.Rating
	}
	if n.Patch.Note != nil {
		note = *n.Patch.Note
	}

	m := picker.New(initial, true, note)
	if n.Service.Locale == "id" {
		m = m.WithLocalLabels()
	}
	choice, err := picker.Run(m)
	if errors.Is(err, picker.ErrCancelled) {
		_, _ = fmt.Fprintln(color.Output, "Nothing logged.")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	n.Patch = n.Patch.WithRating(choice.Rating)
	if choice.HasNote {
		n.Patch = n.Patch.WithNote(choice.Note)
	}
	return true, nil
}
