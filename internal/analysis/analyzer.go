package analysis

import (
	"fmt"

	"alchemetrics/internal/periodic"
	"alchemetrics/internal/resonance"
)

// Analyzer derives element profiles from a periodic table. It holds no
// mutable state, so a single Analyzer is safe for concurrent use.
type Analyzer struct {
	table *periodic.Table
}

// New creates an Analyzer over the given table.
func New(table *periodic.Table) *Analyzer {
	return &Analyzer{table: table}
}

// Table exposes the underlying periodic table for name and symbol queries.
func (a *Analyzer) Table() *periodic.Table {
	return a.table
}

// Analyze builds the full profile for a symbol. Returns an error wrapping
// periodic.ErrNotFound for unknown symbols.
func (a *Analyzer) Analyze(symbol string) (*Profile, error) {
	rec, err := a.table.Lookup(symbol)
	if err != nil {
		return nil, err
	}

	z, zLog, err := resonance.Impedance(rec.IonizationEnergy, rec.Electronegativity, rec.AtomicRadius)
	if err != nil {
		// The built-in table guarantees valid inputs; this only fires on a
		// corrupted or synthetic table.
		return nil, fmt.Errorf("analyze %s: %w", symbol, err)
	}

	freqs := resonance.ChannelFrequencies(rec.IonizationEnergy, rec.AtomicMass)
	affinity, band := resonance.Affinity(freqs, z)
	planetary, hasPlanetary := a.table.PlanetaryOf(symbol)

	return &Profile{
		Symbol:                rec.Symbol,
		Name:                  a.table.NameOf(symbol),
		AtomicNumber:          rec.AtomicNumber,
		AtomicMass:            rec.AtomicMass,
		IonizationEnergy:      rec.IonizationEnergy,
		Electronegativity:     rec.Electronegativity,
		AtomicRadius:          rec.AtomicRadius,
		ElectronConfig:        rec.ElectronConfig,
		Impedance:             z,
		ImpedanceLog:          zLog,
		Frequencies:           freqs,
		ConsciousnessAffinity: affinity,
		NearestBrainwave:      band,
		PlanetaryMetal:        planetary,
		HasPlanetaryMetal:     hasPlanetary,
		Category:              periodic.Classify(rec.AtomicNumber),
	}, nil
}

// AnalyzeAll profiles every element in the table, in atomic-number order.
func (a *Analyzer) AnalyzeAll() []*Profile {
	symbols := a.table.Symbols()
	profiles := make([]*Profile, 0, len(symbols))
	for _, sym := range symbols {
		p, err := a.Analyze(sym)
		if err != nil {
			continue // unreachable with the built-in table
		}
		profiles = append(profiles, p)
	}
	return profiles
}
