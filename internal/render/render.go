// Package render formats profiles, comparisons, and compound reports for
// terminal output. Pure formatting; all numbers arrive precomputed.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"alchemetrics/internal/analysis"
)

const rule = 70

func hr(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("=", n))
}

// pad right-pads a string to the given display width. Planetary glyphs and
// other non-ASCII runes make byte-count padding drift; runewidth keeps the
// columns straight.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// chiString formats an optional electronegativity.
func chiString(p *analysis.Profile) string {
	if !p.Electronegativity.Known {
		return "N/A (noble gas)"
	}
	return fmt.Sprintf("%.2f", p.Electronegativity.Value)
}

// Profile writes the full report for one element.
func Profile(w io.Writer, p *analysis.Profile) {
	fmt.Fprintln(w)
	hr(w, rule)
	fmt.Fprintf(w, "     %s (%s) - Impedance Profile\n", strings.ToUpper(p.Name), p.Symbol)
	hr(w, rule)

	fmt.Fprintln(w, "\n  ATOMIC PROPERTIES:")
	fmt.Fprintf(w, "      Atomic Number: %d\n", p.AtomicNumber)
	fmt.Fprintf(w, "      Atomic Mass: %.3f amu\n", p.AtomicMass)
	fmt.Fprintf(w, "      Electron Config: %s\n", p.ElectronConfig)
	fmt.Fprintf(w, "      Category: %s\n", p.Category)

	fmt.Fprintln(w, "\n  RAW INPUTS:")
	fmt.Fprintf(w, "      Ionization Energy: %.3f eV\n", p.IonizationEnergy)
	fmt.Fprintf(w, "      Electronegativity: %s\n", chiString(p))
	fmt.Fprintf(w, "      Atomic Radius: %.0f pm\n", p.AtomicRadius)

	fmt.Fprintln(w, "\n  DERIVED IMPEDANCE:")
	fmt.Fprintf(w, "      Z_atom: %.4f\n", p.Impedance)
	fmt.Fprintf(w, "      Z_log:  %.4f\n", p.ImpedanceLog)

	fmt.Fprintln(w, "\n  CHANNEL FREQUENCIES:")
	fmt.Fprintf(w, "      Quantum:  %s (%.3e Hz)\n", humanize.SIWithDigits(p.Frequencies.Quantum, 2, "Hz"), p.Frequencies.Quantum)
	fmt.Fprintf(w, "      Acoustic: %s (%.3e Hz)\n", humanize.SIWithDigits(p.Frequencies.Acoustic, 2, "Hz"), p.Frequencies.Acoustic)
	fmt.Fprintf(w, "      Chemical: %s (%.3e Hz)\n", humanize.SIWithDigits(p.Frequencies.Chemical, 2, "Hz"), p.Frequencies.Chemical)

	fmt.Fprintln(w, "\n  CONSCIOUSNESS RESONANCE:")
	fmt.Fprintf(w, "      Affinity: %.3f\n", p.ConsciousnessAffinity)
	fmt.Fprintf(w, "      Nearest Band: %s\n", p.NearestBrainwave)
	bar := int(p.ConsciousnessAffinity * 20)
	fmt.Fprintf(w, "      [%s%s]\n", strings.Repeat("█", bar), strings.Repeat("░", 20-bar))

	if p.HasPlanetaryMetal {
		pm := p.PlanetaryMetal
		fmt.Fprintln(w, "\n  ALCHEMICAL CORRESPONDENCE:")
		fmt.Fprintf(w, "      Planet: %s %s\n", pm.Planet, pm.Glyph)
		fmt.Fprintf(w, "      Day: %s\n", pm.Day)
		fmt.Fprintf(w, "      Quality: %s\n", pm.Quality)
	}

	hr(w, rule)
}

// Comparison writes a side-by-side table for several profiles.
func Comparison(w io.Writer, profiles []*analysis.Profile) {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No valid elements")
		return
	}

	fmt.Fprintln(w)
	hr(w, 90)
	fmt.Fprintln(w, "     ELEMENT COMPARISON - Impedance Properties")
	hr(w, 90)

	fmt.Fprintf(w, "\n  %s %s %s %s %s %s %s %s %s\n",
		pad("Symbol", 6), pad("Name", 12), pad("Z", 4), pad("Mass", 8),
		pad("E_ion", 8), pad("Chi", 6), pad("Z_atom", 8), pad("Affinity", 8), pad("Band", 10))
	fmt.Fprintf(w, "  %s %s %s %s %s %s %s %s %s\n",
		strings.Repeat("-", 6), strings.Repeat("-", 12), strings.Repeat("-", 4),
		strings.Repeat("-", 8), strings.Repeat("-", 8), strings.Repeat("-", 6),
		strings.Repeat("-", 8), strings.Repeat("-", 8), strings.Repeat("-", 10))

	for _, p := range profiles {
		chi := "N/A"
		if p.Electronegativity.Known {
			chi = fmt.Sprintf("%.2f", p.Electronegativity.Value)
		}
		fmt.Fprintf(w, "  %s %s %s %s %s %s %s %s %s\n",
			pad(p.Symbol, 6),
			pad(p.Name, 12),
			pad(fmt.Sprintf("%d", p.AtomicNumber), 4),
			pad(fmt.Sprintf("%.2f", p.AtomicMass), 8),
			pad(fmt.Sprintf("%.3f", p.IonizationEnergy), 8),
			pad(chi, 6),
			pad(fmt.Sprintf("%.3f", p.Impedance), 8),
			pad(fmt.Sprintf("%.3f", p.ConsciousnessAffinity), 8),
			pad(p.NearestBrainwave.String(), 10))
	}

	hr(w, 90)
}

// Match writes an impedance-match report for a pair of symbols.
func Match(w io.Writer, symbolA, symbolB string, r float64, grade analysis.MatchGrade) {
	fmt.Fprintf(w, "\n  Impedance Match R(%s, %s) = %.3f\n", symbolA, symbolB, r)
	fmt.Fprintf(w, "  Interpretation: %s\n", grade)
}

// Compound writes a compound prediction report.
func Compound(w io.Writer, c *analysis.CompoundResult) {
	fmt.Fprintln(w)
	hr(w, rule)
	fmt.Fprintf(w, "     COMPOUND PREDICTION - %s\n", strings.Join(c.Symbols, " + "))
	hr(w, rule)

	fmt.Fprintf(w, "\n      Total Mass: %.2f amu\n", c.TotalMass)
	fmt.Fprintf(w, "      Acoustic Frequency: %s (%.3e Hz)\n", humanize.SIWithDigits(c.AcousticFrequency, 2, "Hz"), c.AcousticFrequency)
	fmt.Fprintf(w, "      Avg Chemical Frequency: %s (%.3e Hz)\n", humanize.SIWithDigits(c.ChemicalFrequency, 2, "Hz"), c.ChemicalFrequency)
	fmt.Fprintf(w, "      Compound Impedance: %.4f\n", c.Impedance)
	fmt.Fprintf(w, "      Avg Impedance Match: %.3f\n", c.AverageMatch)
	fmt.Fprintf(w, "      Stability: %s\n", c.Stability)

	hr(w, rule)
}

// PlanetaryMetals writes the seven-metals listing in traditional order.
func PlanetaryMetals(w io.Writer, profiles []*analysis.Profile) {
	fmt.Fprintln(w)
	hr(w, rule)
	fmt.Fprintln(w, "     THE SEVEN PLANETARY METALS")
	hr(w, rule)

	for _, p := range profiles {
		if !p.HasPlanetaryMetal {
			continue
		}
		pm := p.PlanetaryMetal
		fmt.Fprintf(w, "\n  %s %s-> %s (%s)\n", pm.Glyph, pad(pm.Planet, 10), p.Name, p.Symbol)
		fmt.Fprintf(w, "     Impedance: %.3f\n", p.Impedance)
		fmt.Fprintf(w, "     Consciousness: %s (%.3f)\n", p.NearestBrainwave, p.ConsciousnessAffinity)
		fmt.Fprintf(w, "     Quality: %s\n", pm.Quality)
	}

	fmt.Fprintln(w)
	hr(w, rule)
}

// Ranking writes the top-N consciousness affinity listing.
func Ranking(w io.Writer, profiles []*analysis.Profile, limit int) {
	if limit > len(profiles) {
		limit = len(profiles)
	}
	fmt.Fprintln(w, "\n  HIGH CONSCIOUSNESS-AFFINITY ELEMENTS:")
	for _, p := range profiles[:limit] {
		fmt.Fprintf(w, "    %s : %.3f (%s)\n", pad(p.Symbol, 4), p.ConsciousnessAffinity, p.NearestBrainwave)
	}
}
