package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/store"
)

type Info struct {
	Config  store.Config
	Store   *store.DiskKV
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("MOOD_CONFIG_PATH"); override != "" {
		fmt.Println("MOOD_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("MOOD_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())
	fmt.Println("Config.locale: ", n.Config.Locale())

	if n.Store == nil {
		return fmt.Errorf("failed to open storage")
	}

	fmt.Printf("Namespaces:\n")
	found := 0
	for _, k := range n.Store.Namespaces() {
		fmt.Printf("  %s\n", k)
		found++
	}
	if found == 0 {
		fmt.Printf("  %s\n", "none")
	}

	if n.Service != nil {
		all, err := n.Service.List(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Entries: %d\n", len(all))
		if len(all) > 0 {
			fmt.Printf("  first %s, last %s\n", all[0].Date, all[len(all)-1].Date)
		}
		if who, err := n.Service.Whoami(ctx); err == nil {
			fmt.Printf("Signed in as %s <%s>\n", who.DisplayName(), who.Email)
		}
	}
	return nil
}
