package cli

import (
	"github.com/spf13/cobra"

	"github.com/yyyoichi/lsbsteg/internal/logging"
)

func newConfigCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Config prints the settings in effect after the config file has been
merged over the built-in defaults. The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := g.cfg.Marshal()
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("printing config")
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
