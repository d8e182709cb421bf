package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	on := &options.OnOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "add [note]",
		Aliases: []string{"log"},
		Short:   "Log the mood of a day",
		Long: `Log the mood of a day. Each day holds one entry; logging again merges the
new values into it. A new day needs a rating.`,
		Example: `
mood add -r happy
mood add -r 2 --energy 30 --emotion tired long day at work
mood add --on yesterday -r calm
mood add -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := mo.Patch(cmd, args)
			if err != nil {
				return oo.HandleError(err)
			}
			day, err := on.GetDay(svc.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Add{
				Service:     svc,
				Day:         day,
				Patch:       p,
				Interactive: i.Interactive || p.Empty() && !oo.JSON,
				JSON:        oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMoodArgs(cmd, mo)
	options.AddNoteArgs(cmd, mo)
	options.AddOnArgs(cmd, on)
	options.AddInteractiveArg(cmd, i)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
