package commands

import (
	"context"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the notes journal to a text file",
		Example: `
mood export
mood export --range all -o ~/Documents
mood export -o -
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			f, err := jo.Filter()
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			if out != "-" {
				if out, err = homedir.Expand(out); err != nil {
					return err
				}
			}
			s := export.Export{Service: svc, Filter: f, Out: out}
			return s.Do(context.Background())
		},
	}
	options.AddJournalArgs(cmd, jo)
	cmd.Flags().StringVarP(&out, "out", "o", "",
		"File or directory to write, or - for stdout. Defaults to journal-<today>.txt.")
	topLevel.AddCommand(cmd)
}
