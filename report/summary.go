package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/calganaygun/networks-playground/significance"
)

// WriteSummary prints an aligned per-slot table of a significance result.
func WriteSummary(w io.Writer, res significance.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "slot\tmotif\treal\tmean\tstd\tz\t")
	for _, s := range res.Slots {
		z := "n/a"
		if v, ok := s.ZScore(); ok {
			z = fmt.Sprintf("%.3f", v)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.3f\t%.3f\t%s\t\n", s.Slot, s.Name, s.Real, s.Mean, s.Std, z)
	}
	return tw.Flush()
}
