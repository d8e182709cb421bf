package options

import (
	"fmt"
	"strings"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the day an entry belongs to.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		base.Wrap80(`Specify the day, example: --on="2020-2-28", --on="2/28" or --on=yesterday. Defaults to today.`))
}

// GetDay resolves the flag relative to today. A short "month/day" form takes
// the year of today, or the year before when that day is still ahead.
func (o *OnOptions) GetDay(today timeutil.Day) (timeutil.Day, error) {
	s := strings.ToLower(strings.TrimSpace(o.OnString))
	switch s {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.Prev(), nil
	}
	if t, err := time.Parse(layoutISO, s); err == nil {
		return timeutil.Date(t.Year(), t.Month(), t.Day()), nil
	}
	t, err := time.Parse(layoutISOShort, s)
	if err != nil {
		return "", fmt.Errorf("invalid --on %q: expected YYYY-MM-DD or M/D", o.OnString)
	}
	year := today.Year()
	// Entries are about the past: 12/30 typed on 1/2 means last year.
	if t.Month() > today.Month() || t.Month() == today.Month() && t.Day() > today.DayOfMonth() {
		year--
	}
	d := timeutil.Date(year, t.Month(), t.Day())
	if d.DayOfMonth() != t.Day() {
		return "", fmt.Errorf("invalid --on %q: %s %d has no day %d", o.OnString, t.Month(), year, t.Day())
	}
	return d, nil
}
