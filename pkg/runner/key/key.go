// Package key provides CLI helpers to display the rating legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/printers"
)

// Key prints the mood rating legend.
type Key struct {
	Locale string
}

// Do renders the rating key to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")
	printers.New(k.Locale, false).Key()
	return nil
}
