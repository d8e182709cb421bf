package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/profile"
)

func addStats(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"profile"},
		Short:   "Streaks, monthly fill and the rating distribution",
		Example: `
mood stats
mood stats --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := profile.Profile{Service: svc, ShowID: io.ShowID, JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
