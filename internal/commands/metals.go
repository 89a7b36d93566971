package commands

import (
	"github.com/spf13/cobra"

	"alchemetrics/internal/analysis"
	"alchemetrics/internal/periodic"
	"alchemetrics/internal/render"
)

// MetalsCmd creates the 'metals' command: the seven planetary metals in
// traditional Sun-through-Saturn order.
func MetalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metals",
		Short: "List the seven alchemical planetary metals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newAnalyzer()
			profiles := make([]*analysis.Profile, 0, len(periodic.MetalSymbols))
			for _, sym := range periodic.MetalSymbols {
				if p, err := a.Analyze(sym); err == nil {
					profiles = append(profiles, p)
				}
			}
			render.PlanetaryMetals(cmd.OutOrStdout(), profiles)
			return nil
		},
	}
}
