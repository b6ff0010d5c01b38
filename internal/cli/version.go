package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	steg "github.com/yyyoichi/lsbsteg"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Overrides the root hook so a broken config file does not stop
		// version from printing.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "lsbsteg %s (commit %s, built %s, marker v%d)\n",
				info.Version, info.Commit, info.Date, steg.MarkerVersion)
			return nil
		},
	}
}
