package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"get"},
		Short:   "Read the notes journal",
		Long: `List the entries that have a note, newest first. Narrow the list with a
time window, a rating or a search term.`,
		Example: `
mood journal
mood journal --range 7d
mood journal --range all --rating sad
mood journal -s walk
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			f, err := jo.Filter()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Get{
				Service: svc,
				Filter:  f,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
