// Command mood-seed fills a journal with a few weeks of sample entries.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/identity/local"
	"tableflip.dev/mood/pkg/store"
)

var notes = []string{
	"",
	"Long walk after lunch.",
	"Slept badly, too much coffee.",
	"Dinner with friends.",
	"",
	"Deadline moved again.",
	"Quiet day, read most of the afternoon.",
}

func main() {
	if err := newCommand().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

func newCommand() *cobra.Command {
	days := 21

	cmd := &cobra.Command{
		Use:   "mood-seed",
		Short: "Fill the journal with sample entries ending today.",
		Example: `
mood-seed
mood-seed --days 60
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1, got %d", days)
			}
			return seed(cmd.Context(), days)
		},
	}
	cmd.Flags().IntVar(&days, "days", days, "Number of days to fill, ending today.")
	return cmd
}

func seed(ctx context.Context, days int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	kv, err := store.Load(cfg)
	if err != nil {
		return err
	}
	svc := app.New(kv, local.New(kv), cfg.Locale())

	today := svc.Today()
	for i := days - 1; i >= 0; i-- {
		// Skip some days so streaks have gaps.
		if i%6 == 4 {
			continue
		}
		p := entry.Patch{}.
			WithRating(entry.Rating(1 + rand.Intn(5))).
			WithNote(notes[rand.Intn(len(notes))])
		p.Energy = entry.Int(rand.Intn(101))
		if _, err := svc.LogMood(ctx, today.AddDays(-i), p); err != nil {
			return err
		}
	}

	all, err := svc.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range all {
		fmt.Println(e.Date, e.Rating.Label(), e.Note)
	}
	return nil
}
