package resonance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelFrequenciesHydrogen(t *testing.T) {
	f := ChannelFrequencies(13.598, 1.008)

	// f_quantum = E_ion / h_eV ≈ 3.288e15 Hz
	assert.InDelta(t, 3.288e15, f.Quantum, 0.001e15)

	// f_acoustic = 1e13 * M^(-1/3)
	assert.InDelta(t, 1e13*math.Pow(1.008, -1.0/3.0), f.Acoustic, 1)

	// f_chemical = 0.3 * E_ion / h_eV
	assert.InDelta(t, 0.3*f.Quantum, f.Chemical, 1)
}

func TestChannelFrequenciesPositive(t *testing.T) {
	f := ChannelFrequencies(7.902, 55.85) // Fe

	assert.Greater(t, f.Quantum, 0.0)
	assert.Greater(t, f.Acoustic, 0.0)
	assert.Greater(t, f.Chemical, 0.0)
	assert.Less(t, f.Chemical, f.Quantum) // bond estimate is a fraction of ionization
}

func TestAcousticScalesInverselyWithMass(t *testing.T) {
	light := ChannelFrequencies(10, 1.0)
	heavy := ChannelFrequencies(10, 200.0)

	assert.Greater(t, light.Acoustic, heavy.Acoustic)
	assert.InDelta(t, AcousticScale, light.Acoustic, 1e-3) // 1 amu calibration point
}

func TestCompoundAcoustic(t *testing.T) {
	// Same scaling law as the single-element channel.
	assert.InDelta(t, ChannelFrequencies(1, 58.44).Acoustic, CompoundAcoustic(58.44), 1e-6)
}

func TestChannelFrequenciesDeterministic(t *testing.T) {
	a := ChannelFrequencies(13.598, 1.008)
	b := ChannelFrequencies(13.598, 1.008)
	assert.Equal(t, a, b)
}
