package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/calendar"
	"tableflip.dev/mood/pkg/printers"
)

// Get prints the notes journal: entries with a note, newest first, narrowed
// by Filter.
type Get struct {
	Service *app.Service
	Filter  calendar.Filter
	ShowID  bool
	JSON    bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no store")
	}
	all, err := n.Service.Journal(ctx, n.Filter)
	if err != nil {
		return err
	}

	pp := printers.New(n.Service.Locale, n.ShowID)
	if n.JSON {
		return pp.JSON(all)
	}
	pp.NewLine()
	pp.TitleWithCount(n.title(), len(all))
	pp.Journal(all...)
	return nil
}

func (n *Get) title() string {
	t := "Journal"
	switch n.Filter.Range {
	case calendar.AllTime:
		t += ", all time"
	default:
		t += fmt.Sprintf(", last %d days", int(n.Filter.Range))
	}
	if n.Filter.Rating != 0 {
		t += ", " + n.Filter.Rating.Label()
	}
	if n.Filter.Search != "" {
		t += fmt.Sprintf(", %q", n.Filter.Search)
	}
	return t
}
