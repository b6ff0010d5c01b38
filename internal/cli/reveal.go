package cli

import (
	"github.com/spf13/cobra"

	"github.com/yyyoichi/lsbsteg/imagecodec"
	"github.com/yyyoichi/lsbsteg/internal/logging"
)

func newRevealCommand(g *globals) *cobra.Command {
	var input string
	var raw bool

	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal a message hidden in an image",
		Long: `Reveal reads channel LSBs until the end marker and prints the message.
It exits with status 2 when the image holds no marker.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if input, err = g.resolve(cmd, input, "input", "stego image", ""); err != nil {
				return err
			}
			return runReveal(cmd, g, input, raw)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "stego image")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the decoded bits even when no marker is found")

	return cmd
}

func runReveal(cmd *cobra.Command, g *globals, input string, raw bool) error {
	logger := logging.FromContext(cmd.Context())

	grid, format, err := imagecodec.Load(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded image", logging.FieldPath, input, logging.FieldFormat, format)

	s, err := g.stego()
	if err != nil {
		return err
	}
	r := s.Inspect(grid)
	logger.Debug("scanned image", logging.FieldBits, r.BitsRead, "found", r.Found)

	p := g.printer(cmd)
	if !r.Found {
		p.Warn("end marker not found; the image holds no hidden message")
		if raw {
			p.Line(r.Text)
		}
		return ErrNoMessage
	}
	p.Line(r.Text)
	return nil
}
