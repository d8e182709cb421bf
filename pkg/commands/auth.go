package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/auth"
	"tableflip.dev/mood/pkg/snake"
)

const passwordEnv = "MOOD_PASSWORD"

func addAuth(topLevel *cobra.Command) {
	addLogin(topLevel)
	addRegister(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addRename(topLevel)
}

// ask fills an empty value from the terminal.
func ask(cmd *cobra.Command, v *string, label string, secret bool) error {
	if strings.TrimSpace(*v) != "" {
		return nil
	}
	if secret {
		if env := os.Getenv(passwordEnv); env != "" {
			*v = env
			return nil
		}
	}
	answer, err := snake.Ask(cmd, label, secret)
	if err != nil {
		return err
	}
	*v = answer
	return nil
}

func addLogin(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Example: `
mood login -e me@example.com
mood login --google
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !co.Google {
				if err := ask(cmd, &co.Email, "Email", false); err != nil {
					return oo.HandleError(err)
				}
				if err := ask(cmd, &co.Password, "Password", true); err != nil {
					return oo.HandleError(err)
				}
			}
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := auth.Login{
				Service:   svc,
				Email:     co.Email,
				Password:  co.Password,
				Federated: co.Google,
				JSON:      oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddCredentialArgs(cmd, co)
	options.AddFederatedArgs(cmd, co)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addRegister(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:     "register",
		Aliases: []string{"signup"},
		Short:   "Create an account and sign in",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := ask(cmd, &co.Name, "Name", false); err != nil {
				return oo.HandleError(err)
			}
			if err := ask(cmd, &co.Email, "Email", false); err != nil {
				return oo.HandleError(err)
			}
			if err := ask(cmd, &co.Password, "Password", true); err != nil {
				return oo.HandleError(err)
			}
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := auth.Register{
				Service:  svc,
				Name:     co.Name,
				Email:    co.Email,
				Password: co.Password,
				JSON:     oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddNameArgs(cmd, co)
	options.AddCredentialArgs(cmd, co)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out. Entries stay on this machine.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := auth.Logout{Service: svc}
			return s.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := auth.Whoami{Service: svc, JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <name>",
		Short: "Change your display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := auth.Rename{Service: svc, Name: strings.Join(args, " "), JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
