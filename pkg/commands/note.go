package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/add"
)

func addNote(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var text string

	cmd := &cobra.Command{
		Use:     "note [text]",
		Aliases: []string{"notes"},
		Short:   "Write the journal note of a day",
		Example: `
mood note slept well, long walk after lunch
mood note --on 2024-3-1 first day of spring
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			day, err := on.GetDay(svc.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Note{
				Service: svc,
				Day:     day,
				Text:    text,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
