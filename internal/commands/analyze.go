package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"alchemetrics/internal/analysis"
	"alchemetrics/internal/render"
)

// AnalyzeCmd creates the 'analyze' command: full profile for one element.
func AnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <symbol>",
		Short: "Print the full impedance profile for an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newAnalyzer()
			p, err := a.Analyze(args[0])
			if err != nil {
				return fmt.Errorf("element %q not found in dataset", args[0])
			}
			render.Profile(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

// CompareCmd creates the 'compare' command: side-by-side table for several
// elements. Unknown symbols are skipped.
func CompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <symbol>...",
		Short: "Compare impedance properties across elements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newAnalyzer()
			profiles := make([]*analysis.Profile, 0, len(args))
			for _, sym := range args {
				if p, err := a.Analyze(sym); err == nil {
					profiles = append(profiles, p)
				}
			}
			render.Comparison(cmd.OutOrStdout(), profiles)
			return nil
		},
	}
}
