package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alchemetrics/internal/analysis"
	"alchemetrics/internal/render"
)

// MatchCmd creates the 'match' command: pairwise impedance matching.
func MatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <symbol-a> <symbol-b>",
		Short: "Score the impedance match between two elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newAnalyzer()
			r, grade, err := a.ImpedanceMatch(args[0], args[1])
			if err != nil {
				return fmt.Errorf("unknown element in pair %s, %s", args[0], args[1])
			}
			render.Match(cmd.OutOrStdout(), args[0], args[1], r, grade)
			return nil
		},
	}
}

// CompoundCmd creates the 'compound' command: emergent compound prediction.
func CompoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compound <symbol>...",
		Short: "Predict emergent properties of a compound",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newAnalyzer()
			result, err := a.PredictCompound(args)
			if err != nil {
				if errors.Is(err, analysis.ErrInsufficientElements) {
					return fmt.Errorf("need at least 2 known elements (got %v)", args)
				}
				return err
			}
			render.Compound(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
