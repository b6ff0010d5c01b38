package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/lsbsteg/pixeldump"
)

func newDiffCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <original.txt> <modified.txt>",
		Short: "Compare two pixel dumps",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := pixeldump.CompareFiles(args[0], args[1])
			if err != nil {
				return err
			}

			p := g.printer(cmd)
			if r.LengthMismatch {
				p.Warn("the dumps have a different number of pixels; only the common prefix was compared")
			}
			p.Field("total pixels", r.Total)
			p.Field("unchanged pixels", r.Unchanged())
			p.Field("changed pixels", r.Changed)
			p.Field("changed ratio", fmt.Sprintf("%.10f%%", r.Percent()))
			p.Field("mean channel delta", fmt.Sprintf("%.6f", r.MeanAbsDelta))
			p.Field("max channel delta", r.MaxAbsDelta)
			if math.IsInf(r.PSNR, 1) {
				p.Field("psnr", "inf")
			} else {
				p.Field("psnr", fmt.Sprintf("%.2f dB", r.PSNR))
			}
			p.Line(r.Verdict().String())
			return nil
		},
	}
	return cmd
}
