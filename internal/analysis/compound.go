package analysis

import (
	"errors"
	"fmt"
	"math"

	"alchemetrics/internal/resonance"
)

// ErrInsufficientElements reports a compound prediction with fewer than two
// resolvable symbols.
var ErrInsufficientElements = errors.New("need at least 2 valid elements")

// MatchGrade interprets an impedance match score.
type MatchGrade uint8

const (
	MatchPoor MatchGrade = iota
	MatchWeak
	MatchGood
	MatchExcellent
)

// String returns the interpretation text for the grade.
func (g MatchGrade) String() string {
	switch g {
	case MatchExcellent:
		return "Excellent match - natural affinity"
	case MatchGood:
		return "Good match - can combine with moderate energy"
	case MatchWeak:
		return "Weak match - requires significant energy to combine"
	default:
		return "Poor match - unlikely to form stable compound"
	}
}

// GradeMatch maps a match score to its grade. Branches use strict >, checked
// from the top: a score of exactly 0.8 grades Good, not Excellent.
func GradeMatch(r float64) MatchGrade {
	switch {
	case r > 0.8:
		return MatchExcellent
	case r > 0.5:
		return MatchGood
	case r > 0.2:
		return MatchWeak
	default:
		return MatchPoor
	}
}

// Stability is the predicted stability of a compound.
type Stability uint8

const (
	Unstable Stability = iota
	Metastable
	Stable
)

// String returns the stability label.
func (s Stability) String() string {
	switch s {
	case Stable:
		return "Stable"
	case Unstable:
		return "Unstable"
	default:
		return "Metastable"
	}
}

// CompoundResult aggregates the emergent properties of a multi-element
// compound.
type CompoundResult struct {
	Symbols []string // resolved symbols, input order

	TotalMass         float64 // amu
	AcousticFrequency float64 // Hz, from combined mass
	ChemicalFrequency float64 // Hz, mean of element chemical channels
	Impedance         float64 // exp of the mean log impedance

	AverageMatch float64 // mean pairwise impedance match
	Stability    Stability
}

// ImpedanceMatch scores how readily two elements combine, from the
// similarity of their log impedances:
//
//	R = exp(-Δ² / 2σ²),  Δ = ln(Z₁+1) - ln(Z₂+1),  σ = MatchBandwidth
//
// R is symmetric in its arguments and exactly 1 for an element against
// itself. Fails with a wrapped periodic.ErrNotFound if either symbol is
// unknown.
func (a *Analyzer) ImpedanceMatch(symbolA, symbolB string) (r float64, grade MatchGrade, err error) {
	pa, err := a.Analyze(symbolA)
	if err != nil {
		return 0, MatchPoor, fmt.Errorf("impedance match: %w", err)
	}
	pb, err := a.Analyze(symbolB)
	if err != nil {
		return 0, MatchPoor, fmt.Errorf("impedance match: %w", err)
	}

	r = matchScore(pa.ImpedanceLog, pb.ImpedanceLog)
	return r, GradeMatch(r), nil
}

// matchScore is the log-impedance matching kernel, symmetric and exactly 1
// when the logs coincide.
func matchScore(logA, logB float64) float64 {
	delta := logA - logB
	sigma := resonance.MatchBandwidth
	return math.Exp(-(delta * delta) / (2 * sigma * sigma))
}

// PredictCompound predicts emergent properties for a set of element symbols.
// Unknown symbols are dropped silently; if fewer than two remain the
// prediction fails with ErrInsufficientElements.
func (a *Analyzer) PredictCompound(symbols []string) (*CompoundResult, error) {
	profiles := make([]*Profile, 0, len(symbols))
	for _, sym := range symbols {
		if p, err := a.Analyze(sym); err == nil {
			profiles = append(profiles, p)
		}
	}

	if len(profiles) < 2 {
		return nil, fmt.Errorf("predict compound: resolved %d of %d symbols: %w",
			len(profiles), len(symbols), ErrInsufficientElements)
	}

	var totalMass, chemicalSum, logSum float64
	resolved := make([]string, len(profiles))
	for i, p := range profiles {
		resolved[i] = p.Symbol
		totalMass += p.AtomicMass
		chemicalSum += p.Frequencies.Chemical
		logSum += p.ImpedanceLog
	}
	n := float64(len(profiles))

	// Mean pairwise impedance match over all unordered pairs.
	var matchSum float64
	pairs := 0
	for i, pa := range profiles {
		for _, pb := range profiles[i+1:] {
			matchSum += matchScore(pa.ImpedanceLog, pb.ImpedanceLog)
			pairs++
		}
	}
	avgMatch := 0.0
	if pairs > 0 {
		avgMatch = matchSum / float64(pairs)
	}

	var stability Stability
	switch {
	case avgMatch > 0.5:
		stability = Stable
	case avgMatch < 0.2:
		stability = Unstable
	default:
		stability = Metastable
	}

	return &CompoundResult{
		Symbols:           resolved,
		TotalMass:         totalMass,
		AcousticFrequency: resonance.CompoundAcoustic(totalMass),
		ChemicalFrequency: chemicalSum / n,
		Impedance:         math.Exp(logSum / n),
		AverageMatch:      avgMatch,
		Stability:         stability,
	}, nil
}
