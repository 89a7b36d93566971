package periodic

// PlanetaryCorrespondence is the traditional alchemical mapping from one of
// the seven metals to its celestial body. Display metadata only; nothing in
// the derivations reads it.
type PlanetaryCorrespondence struct {
	Planet  string
	Glyph   string
	Day     string
	Quality string
}

// The seven planetary metals, keyed by element symbol.
var planetaryMetals = map[string]PlanetaryCorrespondence{
	"Au": {"Sun", "☉", "Sunday", "Perfection, illumination"},
	"Ag": {"Moon", "☽", "Monday", "Reflection, intuition"},
	"Hg": {"Mercury", "☿", "Wednesday", "Transformation, communication"},
	"Cu": {"Venus", "♀", "Friday", "Love, beauty, harmony"},
	"Fe": {"Mars", "♂", "Tuesday", "Strength, action, will"},
	"Sn": {"Jupiter", "♃", "Thursday", "Expansion, abundance"},
	"Pb": {"Saturn", "♄", "Saturday", "Structure, limitation, time"},
}

// MetalSymbols lists the seven metals in the traditional order
// (Sun through Saturn).
var MetalSymbols = []string{"Au", "Ag", "Hg", "Cu", "Fe", "Sn", "Pb"}

// PlanetaryOf returns the correspondence for a symbol, if it is one of the
// seven metals.
func (t *Table) PlanetaryOf(symbol string) (PlanetaryCorrespondence, bool) {
	pm, ok := planetaryMetals[symbol]
	return pm, ok
}
