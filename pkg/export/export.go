// Package export renders the notes journal as a flat text document.
package export

import (
	"fmt"
	"io"
	"strings"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/timeutil"
)

// Block renders one entry as
//
//	[Monday, 2 January 2006] Label
//	note
//
// with the date and label in the language of locale.
func Block(e entry.Entry, locale string) string {
	return fmt.Sprintf("[%s] %s\n%s\n", e.Date.HumanIn(locale), e.Rating.LabelIn(locale), e.Note)
}

// Journal writes one block per entry, in the given order, separated by a
// blank line.
func Journal(w io.Writer, entries []entry.Entry, locale string) error {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, Block(e, locale))
	}
	_, err := io.WriteString(w, strings.Join(blocks, "\n"))
	return err
}

// FileName is the suggested name for a journal exported on today.
func FileName(today timeutil.Day) string {
	return "journal-" + today.String() + ".txt"
}
