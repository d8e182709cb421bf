// Package profile prints the profile page: streaks, monthly fill, the
// rating distribution and recent entries.
package profile

import (
	"context"
	"errors"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/printers"
)

type Profile struct {
	Service *app.Service
	ShowID  bool
	JSON    bool
}

func (n *Profile) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show stats, no store")
	}
	sum, err := n.Service.Profile(ctx)
	if err != nil {
		return err
	}

	pp := printers.New(n.Service.Locale, n.ShowID)
	if n.JSON {
		return pp.JSON(sum)
	}

	name := "Your journal"
	if who, err := n.Service.Whoami(ctx); err == nil {
		name = who.DisplayName()
	}
	pp.NewLine()
	if face, err := n.Service.Companion(ctx); err == nil {
		pp.Companion(face)
		pp.NewLine()
	}
	pp.Profile(name, sum)
	return nil
}
