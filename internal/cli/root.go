// Package cli provides the Cobra command structure for lsbsteg.
package cli

import (
	"bufio"
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	steg "github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/internal/config"
	"github.com/yyyoichi/lsbsteg/internal/logging"
	"github.com/yyyoichi/lsbsteg/internal/ui"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globals is the state shared by every subcommand after flag parsing.
type globals struct {
	configPath  string
	logLevel    string
	debug       bool
	color       string
	interactive bool

	cfg    *config.Config
	logger *log.Logger
	stdin  *bufio.Reader
}

// NewRootCommand creates the root lsbsteg command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "lsbsteg",
		Short: "Hide text in the least significant bits of an image",
		Long: `lsbsteg hides a text message in the lowest bit of every red, green and
blue sample of an image, and reveals it again. The message is terminated by
the marker "` + steg.Marker + `", so no length needs to be stored.

Only lossless output formats (PNG, BMP, TIFF) are written, since any lossy
re-encoding destroys the hidden bits.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.color, "color", "auto", "colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&g.interactive, "interactive", "I", false,
		"prompt for missing values even when stdin is not a terminal")

	rootCmd.AddCommand(newHideCommand(g))
	rootCmd.AddCommand(newRevealCommand(g))
	rootCmd.AddCommand(newCapacityCommand(g))
	rootCmd.AddCommand(newDumpCommand(g))
	rootCmd.AddCommand(newDiffCommand(g))
	rootCmd.AddCommand(newConfigCommand(g))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

func (g *globals) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	level := cfg.LogLevel
	if g.logLevel != "" {
		if !logging.ValidLevel(g.logLevel) {
			return fmt.Errorf("%w: unknown --log-level %q", config.ErrInvalidConfig, g.logLevel)
		}
		level = g.logLevel
	}
	if g.debug {
		level = "debug"
	}
	g.logger = logging.New(cmd.ErrOrStderr(), level)
	logging.SetLevel(level)
	if path != "" {
		g.logger.Debug("loaded config", logging.FieldPath, path)
	}

	g.stdin = bufio.NewReader(cmd.InOrStdin())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, g.logger))
	return nil
}

func (g *globals) printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), g.color)
}

func (g *globals) stego(extra ...steg.Option) (*steg.Stego, error) {
	var opts []steg.Option
	if g.cfg.FullRescan {
		opts = append(opts, steg.WithFullRescan())
	}
	return steg.New(append(opts, extra...)...)
}

// canPrompt reports whether missing values may be asked for on stdin.
func (g *globals) canPrompt(cmd *cobra.Command) bool {
	return g.interactive || ui.IsTerminal(cmd.InOrStdin())
}
