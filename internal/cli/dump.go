package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/lsbsteg/imagecodec"
	"github.com/yyyoichi/lsbsteg/internal/logging"
	"github.com/yyyoichi/lsbsteg/pixeldump"
)

func newDumpCommand(g *globals) *cobra.Command {
	var input, output string
	var head int

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the RGB value of every pixel to a text file",
		Long: `Dump writes one "R,G,B" line per pixel, rows top to bottom, and prints the
first lines of the result. Two dumps can be compared with the diff command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if input, err = g.resolve(cmd, input, "input", "image", ""); err != nil {
				return err
			}
			if output, err = g.resolve(cmd, output, "output", "dump file", ""); err != nil {
				return err
			}
			if !cmd.Flags().Changed("head") {
				head = g.cfg.DumpHead
			}

			grid, _, err := imagecodec.Load(input)
			if err != nil {
				return err
			}
			if err := pixeldump.WriteFile(output, grid); err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("wrote dump", logging.FieldPath, output)

			p := g.printer(cmd)
			p.Success("saved %d pixels of %s to %s", grid.Len(), input, output)
			if head <= 0 {
				return nil
			}

			f, err := os.Open(output)
			if err != nil {
				return fmt.Errorf("failed to reopen dump: %w", err)
			}
			defer f.Close()
			lines, err := pixeldump.Head(f, head)
			if err != nil {
				return err
			}
			for _, l := range lines {
				p.Line(l)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "image to dump")
	cmd.Flags().StringVarP(&output, "output", "o", "", "text file to write")
	cmd.Flags().IntVar(&head, "head", 10, "number of lines to print after dumping")

	return cmd
}
