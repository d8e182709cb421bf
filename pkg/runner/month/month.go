// Package month renders the calendar views: a month grid and the current
// week.
package month

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/printers"
)

// Month prints the grid for Year/Month.
type Month struct {
	Service *app.Service
	Year    int
	Month   time.Month
	JSON    bool
}

func (n *Month) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no store")
	}
	if n.Year == 0 {
		today := n.Service.Today()
		n.Year, n.Month = today.Year(), today.Month()
	}
	v, err := n.Service.Month(ctx, n.Year, n.Month)
	if err != nil {
		return err
	}

	pp := printers.New(n.Service.Locale, false)
	if n.JSON {
		return pp.JSON(v)
	}
	pp.NewLine()
	pp.Month(v.Grid, v.Cells, v.Fill)
	return nil
}

// Week prints the current Monday-first week.
type Week struct {
	Service *app.Service
	JSON    bool
}

func (n *Week) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show week, no store")
	}
	w, err := n.Service.Week(ctx)
	if err != nil {
		return err
	}

	pp := printers.New(n.Service.Locale, false)
	if n.JSON {
		return pp.JSON(w)
	}
	pp.NewLine()
	pp.Week(w)
	return nil
}
