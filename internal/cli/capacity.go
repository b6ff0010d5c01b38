package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	steg "github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/imagecodec"
)

func newCapacityCommand(g *globals) *cobra.Command {
	var input, message string

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show how many bits an image can hold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if input, err = g.resolve(cmd, input, "input", "image", ""); err != nil {
				return err
			}
			grid, _, err := imagecodec.Load(input)
			if err != nil {
				return err
			}

			available := steg.Capacity(grid.Width, grid.Height)
			markerBits := len(steg.Marker) * 8
			chars := 0
			if available > markerBits {
				chars = (available - markerBits) / 8
			}

			p := g.printer(cmd)
			p.Field("size", fmt.Sprintf("%dx%d", grid.Width, grid.Height))
			p.Field("capacity bits", available)
			p.Field("max message characters", chars)

			if !cmd.Flags().Changed("message") {
				return nil
			}
			required, err := steg.RequiredBits(message)
			if err != nil {
				return err
			}
			p.Field("message characters", utf8.RuneCountInString(message))
			p.Field("required bits", required)
			if required > available {
				return &steg.CapacityError{Required: required, Available: available}
			}
			p.Success("message fits")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "image to measure")
	cmd.Flags().StringVarP(&message, "message", "m", "", "check whether this message fits")

	return cmd
}
