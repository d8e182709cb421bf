package options

import (
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/entry"
)

// MoodOptions holds the entry fields that can be set from flags. Only flags
// the user actually passed end up in the patch.
type MoodOptions struct {
	Rating     string
	Note       string
	Energy     int
	Stress     int
	Emotions   []string
	Activities []string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.Rating, "rating", "r", "",
		base.Wrap80("Mood rating, 1-5 or a label: angry, sad, afraid, calm, happy (marah, sedih, takut, tenang, senang)."))
	cmd.Flags().IntVar(&o.Energy, "energy", 0,
		"Energy level, 0-100.")
	cmd.Flags().IntVar(&o.Stress, "stress", 0,
		"Stress level, 0-100.")
	cmd.Flags().StringSliceVar(&o.Emotions, "emotion", nil,
		"Emotion tag, repeatable. Replaces the stored tags.")
	cmd.Flags().StringSliceVar(&o.Activities, "activity", nil,
		"Activity tag, repeatable. Replaces the stored tags.")
	_ = cmd.RegisterFlagCompletionFunc("rating", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, len(entry.Ratings()))
		for _, r := range entry.Ratings() {
			out = append(out, strings.ToLower(r.Label()))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

func AddNoteArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Journal note. An empty value clears it.")
}

// Patch converts the flags that were set on cmd, plus an optional note from
// positional args, into a validated patch.
func (o *MoodOptions) Patch(cmd *cobra.Command, args []string) (entry.Patch, error) {
	var p entry.Patch
	flags := cmd.Flags()
	if flags.Changed("rating") {
		r, err := entry.ParseRating(o.Rating)
		if err != nil {
			return p, err
		}
		p = p.WithRating(r)
	}
	if flags.Lookup("note") != nil && flags.Changed("note") {
		p = p.WithNote(o.Note)
	}
	if len(args) > 0 {
		if p.Note != nil {
			return p, fmt.Errorf("note given both as --note and as arguments")
		}
		p = p.WithNote(strings.Join(args, " "))
	}
	if flags.Changed("energy") {
		p.Energy = entry.Int(o.Energy)
	}
	if flags.Changed("stress") {
		p.Stress = entry.Int(o.Stress)
	}
	if flags.Changed("emotion") {
		p.Emotions = cleanTags(o.Emotions)
	}
	if flags.Changed("activity") {
		p.Activities = cleanTags(o.Activities)
	}
	if p.Empty() {
		return p, nil
	}
	return p, p.Validate()
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
