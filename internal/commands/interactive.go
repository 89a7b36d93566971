package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"alchemetrics/internal/analysis"
	"alchemetrics/internal/periodic"
	"alchemetrics/internal/render"
)

// InteractiveCmd creates the 'interactive' command: a menu loop over the
// same operations the subcommands expose.
func InteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run the interactive element analyzer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
	}
}

// parseSymbols splits a comma-separated symbol list, trimming whitespace.
func parseSymbols(line string) []string {
	parts := strings.Split(line, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

func runInteractive(in io.Reader, out io.Writer) {
	a := newAnalyzer()
	scanner := bufio.NewScanner(in)

	prompt := func(msg string) (string, bool) {
		fmt.Fprint(out, msg)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	fmt.Fprintln(out, "\n  ELEMENT ANALYZER - computational alchemy through impedance")

	for {
		fmt.Fprintln(out, "\n  OPTIONS:")
		fmt.Fprintln(out, "  1. Analyze single element")
		fmt.Fprintln(out, "  2. Compare multiple elements")
		fmt.Fprintln(out, "  3. Check impedance match between two elements")
		fmt.Fprintln(out, "  4. Predict compound properties")
		fmt.Fprintln(out, "  5. View planetary metals")
		fmt.Fprintln(out, "  6. Rank by consciousness affinity")
		fmt.Fprintln(out, "  7. Exit")

		choice, ok := prompt("\n  Select (1-7): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			sym, ok := prompt("  Enter element symbol (e.g., Fe, Au, Zn): ")
			if !ok {
				return
			}
			p, err := a.Analyze(sym)
			if err != nil {
				fmt.Fprintf(out, "  Element %q not found in dataset\n", sym)
				continue
			}
			render.Profile(out, p)

		case "2":
			line, ok := prompt("  Enter element symbols (comma-separated): ")
			if !ok {
				return
			}
			var profiles []*analysis.Profile
			for _, sym := range parseSymbols(line) {
				if p, err := a.Analyze(sym); err == nil {
					profiles = append(profiles, p)
				}
			}
			render.Comparison(out, profiles)

		case "3":
			e1, ok := prompt("  First element: ")
			if !ok {
				return
			}
			e2, ok := prompt("  Second element: ")
			if !ok {
				return
			}
			r, grade, err := a.ImpedanceMatch(e1, e2)
			if err != nil {
				fmt.Fprintln(out, "  Unknown element in pair")
				continue
			}
			render.Match(out, e1, e2, r, grade)

		case "4":
			line, ok := prompt("  Enter elements in compound (comma-separated): ")
			if !ok {
				return
			}
			result, err := a.PredictCompound(parseSymbols(line))
			if err != nil {
				if errors.Is(err, analysis.ErrInsufficientElements) {
					fmt.Fprintln(out, "  Need at least 2 known elements")
				} else {
					fmt.Fprintf(out, "  %v\n", err)
				}
				continue
			}
			render.Compound(out, result)

		case "5":
			var profiles []*analysis.Profile
			for _, sym := range periodic.MetalSymbols {
				if p, err := a.Analyze(sym); err == nil {
					profiles = append(profiles, p)
				}
			}
			render.PlanetaryMetals(out, profiles)

		case "6":
			render.Ranking(out, a.RankByAffinity(), LoadConfig().RankLimit)

		case "7":
			fmt.Fprintln(out, "\n  May your elements transmute.")
			return

		default:
			fmt.Fprintln(out, "  Invalid choice")
		}
	}
}
