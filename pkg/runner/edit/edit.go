// Package edit changes or removes existing entries by id.
package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/printers"
)

// ErrNotFound reports an id with no entry. The store treats it as a no-op;
// the CLI tells the user.
var ErrNotFound = errors.New("no entry with that id")

// Edit applies a partial update to an entry.
type Edit struct {
	Service *app.Service
	ID      string
	Patch   entry.Patch
	JSON    bool
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no store")
	}
	if n.Patch.Empty() {
		_, _ = fmt.Fprintln(color.Output, "Nothing to change.")
		return nil
	}
	e, ok, err := n.Service.Update(ctx, n.ID, n.Patch)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, n.ID)
	}
	return show(n.Service, e, n.JSON)
}

// ClearNote empties the note of an entry and keeps its mood.
type ClearNote struct {
	Service *app.Service
	ID      string
	JSON    bool
}

func (n *ClearNote) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear note, no store")
	}
	e, ok, err := n.Service.ClearNote(ctx, n.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, n.ID)
	}
	return show(n.Service, e, n.JSON)
}

// Delete removes an entry.
type Delete struct {
	Service *app.Service
	ID      string
	JSON    bool
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no store")
	}
	ok, err := n.Service.Delete(ctx, n.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, n.ID)
	}
	pp := printers.New(n.Service.Locale, false)
	if n.JSON {
		return pp.JSON(map[string]any{"id": n.ID, "deleted": true})
	}
	_, _ = fmt.Fprintf(color.Output, "Deleted %s\n", n.ID)
	return nil
}

func show(svc *app.Service, e entry.Entry, asJSON bool) error {
	pp := printers.New(svc.Locale, true)
	if asJSON {
		return pp.JSON(e)
	}
	pp.Entry(e)
	return nil
}
