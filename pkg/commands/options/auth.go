package options

import (
	"github.com/spf13/cobra"
)

// CredentialOptions
type CredentialOptions struct {
	Name     string
	Email    string
	Password string
	Google   bool
}

func AddCredentialArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password. Read from MOOD_PASSWORD when empty.")
}

func AddFederatedArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().BoolVar(&o.Google, "google", false,
		"Sign in with Google.")
}

func AddNameArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Display name.")
}
