package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/calendar"
	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/month"
	"tableflip.dev/mood/pkg/tui/monthview"
)

func addCalendar(topLevel *cobra.Command) {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "calendar [month]",
		Aliases: []string{"cal", "month"},
		Short:   "Show a month of moods",
		Example: `
mood calendar
mood calendar 2024-02
mood calendar "February 2024"
mood calendar -i
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			in := ""
			if len(args) == 1 {
				in = args[0]
			}
			y, m, err := calendar.ParseMonth(in, svc.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			if i.Interactive {
				mv, err := monthview.New(context.Background(), svc, svc.Today(), y, m)
				if err != nil {
					return err
				}
				if svc.Locale == "id" {
					mv = mv.WithLocalLabels()
				}
				return monthview.Run(mv)
			}
			s := month.Month{
				Service: svc,
				Year:    y,
				Month:   m,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddInteractiveArg(cmd, i)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)

	addWeek(topLevel)
}

func addWeek(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show this week, Monday first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := month.Week{Service: svc, JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
