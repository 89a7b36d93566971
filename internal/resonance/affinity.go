package resonance

import "math"

// Band is a brainwave frequency band.
type Band uint8

const (
	BandDelta Band = iota
	BandTheta
	BandAlpha
	BandBeta
	BandGamma
	BandHighGamma
)

// String returns the lowercase band label.
func (b Band) String() string {
	switch b {
	case BandDelta:
		return "delta"
	case BandTheta:
		return "theta"
	case BandAlpha:
		return "alpha"
	case BandBeta:
		return "beta"
	case BandGamma:
		return "gamma"
	default:
		return "high_gamma"
	}
}

// bandTargets pairs each band with its target frequency in Hz. A slice, not
// a map: iteration order is part of the contract — on an exact affinity tie
// the earlier band wins.
var bandTargets = []struct {
	band   Band
	target float64
}{
	{BandDelta, 2},
	{BandTheta, 6},
	{BandAlpha, 10},
	{BandBeta, 20},
	{BandGamma, 40},
	{BandHighGamma, 100},
}

// Affinity scores how well an element's frequencies resonate with brainwave
// bands, on [0, 1]. Atomic frequencies sit many orders of magnitude above
// brain frequencies, so the score looks for octave (power-of-ten) subharmonic
// relationships rather than direct matches: for each band it takes
// log10(f_acoustic / target), measures the deviation from the nearest
// integer, and scores exp(-deviation · HarmonicSharpness).
//
// Only the acoustic channel feeds the band loop. The quantum and chemical
// channels are accepted so the full triple is visible at the call site, but
// the original model never consulted them and this implementation keeps that
// behavior.
//
// The nearest octave is found with math.Round, which rounds halves away from
// zero; exact half-octave inputs therefore resolve deterministically.
//
// The band score is then damped by a Gaussian factor centered on
// OptimalImpedance — very high impedance is inert, very low is unstable.
func Affinity(f Frequencies, impedance float64) (affinity float64, best Band) {
	bestAffinity := 0.0

	for _, bt := range bandTargets {
		logRatio := math.Log10(f.Acoustic / bt.target)
		deviation := math.Abs(logRatio - math.Round(logRatio))
		a := math.Exp(-deviation * HarmonicSharpness)

		if a > bestAffinity {
			bestAffinity = a
			best = bt.band
		}
	}

	d := (impedance - OptimalImpedance) / ImpedanceWidth
	impedanceFactor := math.Exp(-d * d)

	affinity = bestAffinity * impedanceFactor
	if affinity > 1 {
		affinity = 1 // float error can nudge past 1 at exact harmonics
	}
	return affinity, best
}
