package options

import (
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/calendar"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// JournalOptions narrows the notes journal.
type JournalOptions struct {
	Range  string
	Search string
	Rating string
}

func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	cmd.Flags().StringVar(&o.Range, "range", timeutil.DefaultWindow,
		base.Wrap80("Time window: 7d, 30d or all."))
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only notes containing this text, ignoring case.")
	cmd.Flags().StringVarP(&o.Rating, "rating", "r", "",
		"Only entries with this rating, 1-5 or a label.")
	_ = cmd.RegisterFlagCompletionFunc("range", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"7d", "30d", timeutil.Unbounded}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Filter builds the journal filter from the flags.
func (o *JournalOptions) Filter() (calendar.Filter, error) {
	r, err := calendar.ParseRange(o.Range)
	if err != nil {
		return calendar.Filter{}, err
	}
	f := calendar.Filter{Range: r, Search: strings.TrimSpace(o.Search)}
	if strings.TrimSpace(o.Rating) != "" {
		if f.Rating, err = entry.ParseRating(o.Rating); err != nil {
			return calendar.Filter{}, err
		}
	}
	return f, nil
}
