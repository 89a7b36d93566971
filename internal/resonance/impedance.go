package resonance

import (
	"fmt"
	"math"

	"alchemetrics/internal/periodic"
)

// Impedance derives atomic impedance from first ionization energy (eV),
// optional electronegativity, and atomic radius (pm):
//
//	Z = √(E_ion × χ) / r
//
// High ionization energy resists change, high electronegativity holds
// electrons tightly, a large radius spreads the energy and lowers impedance.
// Noble gases carry no electronegativity; for them ionization energy alone
// drives the numerator, making them high-impedance as expected.
//
// Returns the impedance and its log form ln(Z+1), which is finite for any
// Z ≥ 0 and scale-invariant enough for matching.
func Impedance(ionizationEV float64, chi periodic.Electronegativity, radiusPM float64) (z, zLog float64, err error) {
	if radiusPM <= 0 {
		return 0, 0, fmt.Errorf("impedance: atomic radius must be positive, got %v pm", radiusPM)
	}
	if ionizationEV < 0 {
		return 0, 0, fmt.Errorf("impedance: ionization energy must be non-negative, got %v eV", ionizationEV)
	}

	// pm → Å keeps the numbers in a human-readable range.
	rAngstrom := radiusPM / 100.0

	if chi.Known {
		z = math.Sqrt(ionizationEV*chi.Value) / rAngstrom
	} else {
		z = ionizationEV / rAngstrom
	}

	zLog = math.Log(z + 1)
	return z, zLog, nil
}
