package resonance

import "math"

// Frequencies holds the three channel frequencies of an element, in Hz.
type Frequencies struct {
	Quantum  float64 // electronic transition: E_ion / h, PHz range
	Acoustic float64 // mass scaling law: AcousticScale · M^(-1/3), THz range
	Chemical float64 // estimated bond energy / h
}

// ChannelFrequencies derives the three channel frequencies from first
// ionization energy (eV) and atomic mass (amu). Pure and deterministic.
func ChannelFrequencies(ionizationEV, massAMU float64) Frequencies {
	bondEnergy := BondEnergyFraction * ionizationEV

	return Frequencies{
		Quantum:  ionizationEV / HPlanckEV,
		Acoustic: AcousticScale * math.Pow(massAMU, -1.0/3.0),
		Chemical: bondEnergy / HPlanckEV,
	}
}

// CompoundAcoustic returns the acoustic frequency for a combined mass,
// using the same scaling law as the single-element channel.
func CompoundAcoustic(totalMassAMU float64) float64 {
	return AcousticScale * math.Pow(totalMassAMU, -1.0/3.0)
}
