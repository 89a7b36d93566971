package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"alchemetrics/internal/persistence"
)

// ExportCmd creates the 'export' command: write every computed profile to a
// SQLite file for inspection with SQL tooling.
func ExportCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all element profiles to SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = LoadConfig().ExportPath
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create export dir: %w", err)
				}
			}

			db, err := persistence.Open(path)
			if err != nil {
				return err
			}
			defer db.Close()

			a := newAnalyzer()
			runID, err := db.SaveRun(a.AnalyzeAll())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported run %s to %s\n", runID, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "out", "o", "", "SQLite file path (default from config)")

	return cmd
}
