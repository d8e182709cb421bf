// Package list prints every entry in the journal, newest first, whether or
// not it has a note.
package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/stats"
)

type List struct {
	Service *app.Service
	ShowID  bool
	JSON    bool
	// Out overrides the terminal, for tests.
	Out io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no store")
	}
	all, err := n.Service.List(ctx)
	if err != nil {
		return err
	}
	all = stats.Recent(all, len(all))

	pp := printers.New(n.Service.Locale, n.ShowID)
	pp.Out = n.Out
	if n.JSON {
		return pp.JSON(all)
	}
	pp.NewLine()
	pp.TitleWithCount("Entries", len(all))
	pp.Journal(all...)
	return nil
}
