package periodic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	table := NewTable()

	rec, err := table.Lookup("H")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.AtomicNumber)
	assert.InDelta(t, 1.008, rec.AtomicMass, 1e-9)
	assert.InDelta(t, 13.598, rec.IonizationEnergy, 1e-9)
	assert.True(t, rec.Electronegativity.Known)
	assert.InDelta(t, 2.20, rec.Electronegativity.Value, 1e-9)
	assert.Equal(t, "1s1", rec.ElectronConfig)
}

func TestLookupUnknown(t *testing.T) {
	table := NewTable()

	_, err := table.Lookup("Xx")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupCaseSensitive(t *testing.T) {
	table := NewTable()

	// Symbol matching is exact by design; no normalization.
	_, err := table.Lookup("FE")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = table.Lookup("fe")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = table.Lookup("Fe")
	assert.NoError(t, err)
}

func TestNobleGasesHaveNoElectronegativity(t *testing.T) {
	table := NewTable()

	for _, sym := range []string{"He", "Ne", "Ar", "Kr"} {
		rec, err := table.Lookup(sym)
		require.NoError(t, err)
		assert.False(t, rec.Electronegativity.Known, "%s should carry no electronegativity", sym)
	}
}

func TestSymbolsOrderedByAtomicNumber(t *testing.T) {
	table := NewTable()

	symbols := table.Symbols()
	require.Equal(t, table.Len(), len(symbols))
	assert.Equal(t, "H", symbols[0])
	assert.Equal(t, "U", symbols[len(symbols)-1])

	prev := 0
	for _, sym := range symbols {
		rec, err := table.Lookup(sym)
		require.NoError(t, err)
		assert.Greater(t, rec.AtomicNumber, prev)
		prev = rec.AtomicNumber
	}
}

func TestNameOf(t *testing.T) {
	table := NewTable()

	assert.Equal(t, "Hydrogen", table.NameOf("H"))
	assert.Equal(t, "Mercury", table.NameOf("Hg"))
	// Falls back to the symbol when no name is known.
	assert.Equal(t, "Xx", table.NameOf("Xx"))
}

func TestPlanetaryOf(t *testing.T) {
	table := NewTable()

	pm, ok := table.PlanetaryOf("Au")
	require.True(t, ok)
	assert.Equal(t, "Sun", pm.Planet)
	assert.Equal(t, "☉", pm.Glyph)
	assert.Equal(t, "Sunday", pm.Day)

	_, ok = table.PlanetaryOf("H")
	assert.False(t, ok)

	// All seven metals resolve.
	for _, sym := range MetalSymbols {
		_, ok := table.PlanetaryOf(sym)
		assert.True(t, ok, "%s should have a planetary correspondence", sym)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		atomicNumber int
		want         Category
	}{
		{1, CategoryNonmetal},
		{2, CategoryNobleGas},
		{3, CategoryAlkaliMetal},
		{4, CategoryAlkalineEarth},
		{8, CategoryNonmetal},
		{9, CategoryHalogen},
		{13, CategoryOtherMetal},
		{17, CategoryHalogen},
		{18, CategoryNobleGas},
		{26, CategoryTransitionMetal},
		{47, CategoryTransitionMetal},
		{50, CategoryOtherMetal},
		{57, CategoryLanthanide},
		{79, CategoryTransitionMetal},
		{92, CategoryActinide},
	}

	for _, tt := range tests {
		got := Classify(tt.atomicNumber)
		assert.Equal(t, tt.want, got, "atomic number %d", tt.atomicNumber)
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Noble Gas", CategoryNobleGas.String())
	assert.Equal(t, "Transition Metal", CategoryTransitionMetal.String())
	assert.Equal(t, "Other Metal", CategoryOtherMetal.String())
}
