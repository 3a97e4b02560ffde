package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printKeys(cmd.OutOrStdout())
	},
}

// printKeys writes one line per binding, grouped as in the full help view.
func printKeys(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, group := range tui.DefaultKeyMap().FullHelp() {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		for _, b := range group {
			h := b.Help()
			fmt.Fprintf(tw, "  %s\t%s\n", h.Key, h.Desc)
		}
	}
	return tw.Flush()
}
