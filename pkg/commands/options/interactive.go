package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions asks for the mood (or the month, for calendar) with a
// prompt instead of reading it from flags.
type InteractiveOptions struct {
	Interactive bool
}

func AddInteractiveArg(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Pick the mood and fields with prompts.")
}
