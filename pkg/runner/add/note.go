package add

import (
	"context"
	"errors"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/timeutil"
)

// Note writes the journal note for a day. A day without an entry gets one
// with the default rating.
type Note struct {
	Service *app.Service
	Day     timeutil.Day
	Text    string
	JSON    bool
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not write note, no store")
	}
	if n.Day == "" {
		n.Day = n.Service.Today()
	}
	e, err := n.Service.SaveNote(ctx, n.Day, n.Text)
	if err != nil {
		return err
	}

	pp := printers.New(n.Service.Locale, false)
	if n.JSON {
		return pp.JSON(e)
	}
	pp.Title("Saved")
	pp.Journal(e)
	return nil
}
