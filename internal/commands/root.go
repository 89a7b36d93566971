// Package commands wires the analysis core to the CLI. Every command is a
// thin adapter: parse arguments, call the analyzer, render. No derivation
// logic lives here.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"alchemetrics/internal/analysis"
	"alchemetrics/internal/periodic"
)

// newAnalyzer builds the analyzer over the built-in table. Each command
// constructs its own; the table is static so there is nothing to share.
func newAnalyzer() *analysis.Analyzer {
	return analysis.New(periodic.NewTable())
}

// RootCmd creates the root command.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "alchemetrics",
		Short: "Computational alchemy through atomic impedance",
		Long: `Alchemetrics derives impedance, channel frequencies, and brainwave
affinity for chemical elements from their measured atomic properties,
then predicts pairwise matching and compound stability.

The model is a numerological heuristic, not physics. Treat every
"consciousness" number as entertainment.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}
