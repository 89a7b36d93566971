package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alchemetrics/internal/periodic"
)

func TestImpedanceMatchSelf(t *testing.T) {
	a := newTestAnalyzer()

	for _, sym := range []string{"H", "Fe", "Au", "He"} {
		r, grade, err := a.ImpedanceMatch(sym, sym)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r, "self match for %s", sym)
		assert.Equal(t, MatchExcellent, grade)
	}
}

func TestImpedanceMatchSymmetric(t *testing.T) {
	a := newTestAnalyzer()

	pairs := [][2]string{{"Na", "Cl"}, {"H", "O"}, {"Au", "Pb"}, {"He", "Cs"}}
	for _, pair := range pairs {
		r1, _, err := a.ImpedanceMatch(pair[0], pair[1])
		require.NoError(t, err)
		r2, _, err := a.ImpedanceMatch(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, r1, r2, "match(%s,%s) vs match(%s,%s)", pair[0], pair[1], pair[1], pair[0])
	}
}

func TestImpedanceMatchBounded(t *testing.T) {
	a := newTestAnalyzer()

	symbols := a.Table().Symbols()
	for i, s1 := range symbols {
		for _, s2 := range symbols[i+1:] {
			r, _, err := a.ImpedanceMatch(s1, s2)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, r, 0.0)
			assert.LessOrEqual(t, r, 1.0)
		}
	}
}

func TestImpedanceMatchUnknown(t *testing.T) {
	a := newTestAnalyzer()

	_, _, err := a.ImpedanceMatch("Xx", "Cl")
	assert.ErrorIs(t, err, periodic.ErrNotFound)
	_, _, err = a.ImpedanceMatch("Na", "Xx")
	assert.ErrorIs(t, err, periodic.ErrNotFound)
}

func TestGradeMatch(t *testing.T) {
	tests := []struct {
		r    float64
		want MatchGrade
	}{
		{1.0, MatchExcellent},
		{0.81, MatchExcellent},
		{0.8, MatchGood}, // strict >, boundary falls down
		{0.51, MatchGood},
		{0.5, MatchWeak},
		{0.21, MatchWeak},
		{0.2, MatchPoor},
		{0.0, MatchPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeMatch(tt.r), "r = %v", tt.r)
	}
}

func TestPredictCompoundNaCl(t *testing.T) {
	a := newTestAnalyzer()

	result, err := a.PredictCompound([]string{"Na", "Cl"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Na", "Cl"}, result.Symbols)
	assert.InDelta(t, 22.99+35.45, result.TotalMass, 1e-9)
	assert.InDelta(t, 1e13*math.Pow(58.44, -1.0/3.0), result.AcousticFrequency, 1)

	// With one pair, the average match is exactly the pairwise match.
	r, _, err := a.ImpedanceMatch("Na", "Cl")
	require.NoError(t, err)
	assert.InDelta(t, r, result.AverageMatch, 1e-12)
}

func TestPredictCompoundAggregates(t *testing.T) {
	a := newTestAnalyzer()

	result, err := a.PredictCompound([]string{"H", "O", "N", "C"})
	require.NoError(t, err)

	pH, _ := a.Analyze("H")
	pO, _ := a.Analyze("O")
	pN, _ := a.Analyze("N")
	pC, _ := a.Analyze("C")

	wantChem := (pH.Frequencies.Chemical + pO.Frequencies.Chemical +
		pN.Frequencies.Chemical + pC.Frequencies.Chemical) / 4
	assert.InDelta(t, wantChem, result.ChemicalFrequency, 1e-3)

	wantZ := math.Exp((pH.ImpedanceLog + pO.ImpedanceLog + pN.ImpedanceLog + pC.ImpedanceLog) / 4)
	assert.InDelta(t, wantZ, result.Impedance, 1e-9)

	// Four elements give six unordered pairs; the average stays in [0, 1].
	assert.GreaterOrEqual(t, result.AverageMatch, 0.0)
	assert.LessOrEqual(t, result.AverageMatch, 1.0)
}

func TestPredictCompoundDropsUnknown(t *testing.T) {
	a := newTestAnalyzer()

	// Unknown symbols are dropped silently; the two known ones remain.
	result, err := a.PredictCompound([]string{"Na", "Xx", "Cl"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Na", "Cl"}, result.Symbols)
}

func TestPredictCompoundInsufficient(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name    string
		symbols []string
	}{
		{"single element", []string{"Fe"}},
		{"all unknown", []string{"Xx", "Yy"}},
		{"one known one unknown", []string{"Fe", "Xx"}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.PredictCompound(tt.symbols)
			assert.ErrorIs(t, err, ErrInsufficientElements)
		})
	}
}

func TestStabilityString(t *testing.T) {
	assert.Equal(t, "Stable", Stable.String())
	assert.Equal(t, "Metastable", Metastable.String())
	assert.Equal(t, "Unstable", Unstable.String())
}

func TestPredictCompoundStabilityLabel(t *testing.T) {
	a := newTestAnalyzer()

	// Na and K are both soft alkali metals with near-identical impedance:
	// their match is high, so the pair predicts stable.
	result, err := a.PredictCompound([]string{"Na", "K"})
	require.NoError(t, err)
	assert.Greater(t, result.AverageMatch, 0.5)
	assert.Equal(t, Stable, result.Stability)

	// Helium against cesium is the widest impedance gap in the table; the
	// match collapses to ~0 and the pair predicts unstable.
	result, err = a.PredictCompound([]string{"He", "Cs"})
	require.NoError(t, err)
	assert.Less(t, result.AverageMatch, 0.2)
	assert.Equal(t, Unstable, result.Stability)
}
