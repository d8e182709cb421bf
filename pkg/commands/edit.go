package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/edit"
	"tableflip.dev/mood/pkg/snake"
)

func addEdit(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an entry",
		Example: `
mood edit 6f1c... -r sad
mood edit 6f1c... --note "rewrote this"
mood edit 6f1c... --emotion=
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := mo.Patch(cmd, nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := edit.Edit{
				Service: svc,
				ID:      args[0],
				Patch:   p,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddMoodArgs(cmd, mo)
	options.AddNoteArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)

	addClearNote(topLevel)
	addDelete(topLevel)
}

func addClearNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "clear-note <id>",
		Short:             "Remove the note of an entry, keeping its mood",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := edit.ClearNote{Service: svc, ID: args[0], JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:               "delete <id>",
		Aliases:           []string{"rm"},
		Short:             "Delete an entry",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !yes && !oo.JSON {
				ok, err := snake.Confirm(cmd, fmt.Sprintf("Delete entry %s", args[0]))
				if err != nil || !ok {
					return err
				}
			}
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := edit.Delete{Service: svc, ID: args[0], JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
