package commands

import (
	"github.com/spf13/cobra"

	"alchemetrics/internal/render"
)

// RankCmd creates the 'rank' command: elements ordered by consciousness
// affinity.
func RankCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank all elements by consciousness affinity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				limit = LoadConfig().RankLimit
			}
			a := newAnalyzer()
			render.Ranking(cmd.OutOrStdout(), a.RankByAffinity(), limit)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of elements to show (default from config)")

	return cmd
}
