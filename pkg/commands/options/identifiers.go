package options

import (
	"github.com/spf13/cobra"
)

// IDOptions toggles printing the entry ID beside each day. The IDs it shows
// are what edit and delete accept.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the entry ID next to each day, for use with edit.")
}
