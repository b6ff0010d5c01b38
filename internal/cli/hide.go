package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	steg "github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/imagecodec"
	"github.com/yyyoichi/lsbsteg/internal/logging"
)

func newHideCommand(g *globals) *cobra.Command {
	var input, message, messageFile, output string

	cmd := &cobra.Command{
		Use:   "hide",
		Short: "Hide a message in an image",
		Long: `Hide a message in the channel LSBs of the input image and write the result
to a lossless image. Characters must be in the range U+0000 to U+00FF.`,
		Example: `  lsbsteg hide -i carrier.png -m "meet at noon" -o stego.png
  lsbsteg hide -i carrier.bmp --message-file note.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if input, err = g.resolve(cmd, input, "input", "carrier image", ""); err != nil {
				return err
			}
			switch {
			case cmd.Flags().Changed("message"):
			case messageFile != "":
				data, err := os.ReadFile(messageFile)
				if err != nil {
					return fmt.Errorf("failed to read message file: %w", err)
				}
				message = string(data)
			default:
				if message, err = g.resolve(cmd, "", "message", "message to hide", ""); err != nil {
					return err
				}
			}
			if output, err = g.resolve(cmd, output, "output", "output image", g.cfg.Output); err != nil {
				return err
			}
			return runHide(cmd, g, input, message, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "carrier image")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to hide")
	cmd.Flags().StringVar(&messageFile, "message-file", "", "read the message from a file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (png, bmp, tiff)")
	cmd.MarkFlagsMutuallyExclusive("message", "message-file")

	return cmd
}

func runHide(cmd *cobra.Command, g *globals, input, message, output string) error {
	logger := logging.FromContext(cmd.Context())

	if strings.Contains(message, steg.Marker) {
		logger.Warn("message contains the end marker; reveal will stop at its first occurrence",
			"marker", steg.Marker)
	}

	grid, format, err := imagecodec.Load(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded carrier", logging.FieldPath, input, logging.FieldFormat, format,
		"width", grid.Width, "height", grid.Height)

	s, err := g.stego()
	if err != nil {
		return err
	}
	dist, err := s.Hide(grid, message)
	if err != nil {
		return fmt.Errorf("failed to hide message: %w", err)
	}
	if err := imagecodec.Save(output, dist); err != nil {
		return err
	}

	required, _ := steg.RequiredBits(message)
	logger.Debug("embedded payload", logging.FieldBits, required,
		"capacity", steg.Capacity(grid.Width, grid.Height))

	g.printer(cmd).Success("message hidden in %s", output)
	return nil
}
