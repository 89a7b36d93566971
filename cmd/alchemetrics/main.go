// Command alchemetrics analyzes chemical elements through the impedance
// model: derived impedance, channel frequencies, brainwave affinity, and
// compound stability prediction.
package main

import (
	"os"

	"alchemetrics/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.AnalyzeCmd())
	rootCmd.AddCommand(commands.CompareCmd())
	rootCmd.AddCommand(commands.MatchCmd())
	rootCmd.AddCommand(commands.CompoundCmd())
	rootCmd.AddCommand(commands.MetalsCmd())
	rootCmd.AddCommand(commands.RankCmd())
	rootCmd.AddCommand(commands.ExportCmd())
	rootCmd.AddCommand(commands.InteractiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
