package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/identity/local"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/store"
)

var (
	oo      = &options.OutputOptions{}
	noColor bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mood",
		Short: base.Wrap80("Daily mood journaling on the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			printers.ConfigureColor(noColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addAdd(topLevel)
	addNote(topLevel)
	addEdit(topLevel)
	addGet(topLevel)
	addList(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addExport(topLevel)
	addAuth(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
}

// loaded is the opened storage and the service built on it.
type loaded struct {
	Config  store.Config
	Store   *store.DiskKV
	Service *app.Service
}

func load() (*loaded, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &loaded{
		Config:  cfg,
		Store:   kv,
		Service: app.New(kv, local.New(kv), cfg.Locale()),
	}, nil
}

func loadService() (*app.Service, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	return l.Service, nil
}
