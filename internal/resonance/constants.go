// Package resonance derives impedance, channel frequencies, and brainwave
// affinity from raw atomic properties. All constants live here — no magic
// numbers inside the formulas.
package resonance

// Physical constants.
const (
	// HPlanck is the Planck constant (J·s).
	HPlanck = 6.62607e-34

	// HPlanckEV is the Planck constant expressed in eV·s. Dividing an
	// energy in eV by this gives the transition frequency in Hz.
	HPlanckEV = 4.135667e-15

	// CLight is the speed of light (m/s).
	CLight = 299792458

	// AMUToKg converts atomic mass units to kilograms.
	AMUToKg = 1.66054e-27
)

// Model calibration constants.
const (
	// AcousticScale calibrates the mass scaling law f = AcousticScale · M^(-1/3)
	// so that 1 amu lands at the molecular phonon scale (~1e13 Hz).
	AcousticScale = 1e13

	// BondEnergyFraction estimates typical bond energy as a fraction of the
	// first ionization energy (covalent bonds run ~2-4 eV).
	BondEnergyFraction = 0.3

	// OptimalImpedance is where biological ions cluster. Too far above is
	// inert, too far below is unstable.
	OptimalImpedance = 3.0

	// ImpedanceWidth is the Gaussian width of the impedance factor around
	// OptimalImpedance.
	ImpedanceWidth = 2.0

	// HarmonicSharpness controls how sharply affinity peaks at exact octave
	// relationships: exp(-deviation · HarmonicSharpness).
	HarmonicSharpness = 5.0

	// MatchBandwidth is the sigma of the log-impedance matching kernel.
	MatchBandwidth = 0.5
)
