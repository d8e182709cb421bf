// Package export writes the filtered notes journal to a text file.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/calendar"
	mexport "tableflip.dev/mood/pkg/export"
)

type Export struct {
	Service *app.Service
	Filter  calendar.Filter
	// Out is a file path, a directory, or "-" for stdout. Empty writes
	// journal-<today>.txt in the working directory.
	Out string
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no store")
	}

	var buf bytes.Buffer
	count, err := n.Service.Export(ctx, &buf, n.Filter)
	if err != nil {
		return err
	}

	if n.Out == "-" {
		_, err := color.Output.Write(buf.Bytes())
		return err
	}

	path := n.Out
	name := mexport.FileName(n.Service.Today())
	if path == "" {
		path = name
	} else if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, name)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	_, _ = fmt.Fprintf(color.Output, "Exported %d entries to %s\n", count, path)
	return nil
}
