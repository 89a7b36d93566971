// Package analysis composes the derivation pipeline into full element
// profiles and aggregates profiles into pairwise and compound predictions.
package analysis

import (
	"alchemetrics/internal/periodic"
	"alchemetrics/internal/resonance"
)

// Profile is the complete derived view of one element. Immutable once
// assembled; build a new one rather than mutating.
type Profile struct {
	Symbol       string
	Name         string
	AtomicNumber int
	AtomicMass   float64

	// Raw atomic properties, carried through from the table.
	IonizationEnergy  float64
	Electronegativity periodic.Electronegativity
	AtomicRadius      float64
	ElectronConfig    string

	// Derived impedance.
	Impedance    float64
	ImpedanceLog float64 // ln(Z+1), used for matching

	// Channel frequencies.
	Frequencies resonance.Frequencies

	// Brainwave resonance.
	ConsciousnessAffinity float64 // 0-1
	NearestBrainwave      resonance.Band

	// Traditional correspondence, for the seven metals only.
	PlanetaryMetal    periodic.PlanetaryCorrespondence
	HasPlanetaryMetal bool

	Category periodic.Category
}
