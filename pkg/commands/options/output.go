package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions switches a command to JSON output. With JSON on, failures
// are reported as {"error": "..."} on Out and the command exits cleanly so
// scripts can parse every result the same way.
type OutputOptions struct {
	JSON bool
	// Out receives the JSON error; nil means the terminal.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return color.Output
}

func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}
	b, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(o.out(), string(b))
	return nil
}
