// Package periodic provides the immutable element dataset: raw atomic
// properties, element names, periodic-table categories, and the traditional
// planetary-metal correspondences.
package periodic

// Electronegativity is an optional Pauling electronegativity. Noble gases
// have none; Known distinguishes "absent" from any numeric value so the
// impedance formula can branch explicitly instead of dividing a default.
type Electronegativity struct {
	Value float64
	Known bool
}

// Chi wraps a known Pauling electronegativity.
func Chi(v float64) Electronegativity {
	return Electronegativity{Value: v, Known: true}
}

// NoChi is the absent electronegativity of the noble gases.
var NoChi = Electronegativity{}

// Record holds the raw measured properties of one element.
// Values come from NIST and the CRC Handbook. Records never change after
// table construction.
type Record struct {
	Symbol            string
	AtomicNumber      int
	AtomicMass        float64 // amu
	IonizationEnergy  float64 // eV, first ionization
	Electronegativity Electronegativity
	AtomicRadius      float64 // pm
	ElectronConfig    string
}

// Category is the periodic-table family of an element.
type Category uint8

const (
	CategoryNobleGas Category = iota
	CategoryAlkaliMetal
	CategoryAlkalineEarth
	CategoryHalogen
	CategoryNonmetal
	CategoryTransitionMetal
	CategoryLanthanide
	CategoryActinide
	CategoryOtherMetal
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryNobleGas:
		return "Noble Gas"
	case CategoryAlkaliMetal:
		return "Alkali Metal"
	case CategoryAlkalineEarth:
		return "Alkaline Earth"
	case CategoryHalogen:
		return "Halogen"
	case CategoryNonmetal:
		return "Nonmetal"
	case CategoryTransitionMetal:
		return "Transition Metal"
	case CategoryLanthanide:
		return "Lanthanide"
	case CategoryActinide:
		return "Actinide"
	default:
		return "Other Metal"
	}
}

// Classify assigns the periodic category for an atomic number.
// Rules are checked in a fixed priority order; the first match wins.
func Classify(atomicNumber int) Category {
	switch {
	case inSet(atomicNumber, 2, 10, 18, 36, 54, 86):
		return CategoryNobleGas
	case atomicNumber == 1:
		return CategoryNonmetal
	case inSet(atomicNumber, 3, 11, 19, 37, 55, 87):
		return CategoryAlkaliMetal
	case inSet(atomicNumber, 4, 12, 20, 38, 56, 88):
		return CategoryAlkalineEarth
	case inSet(atomicNumber, 6, 7, 8, 15, 16, 34):
		return CategoryNonmetal
	case inSet(atomicNumber, 9, 17, 35, 53, 85):
		return CategoryHalogen
	case (atomicNumber >= 21 && atomicNumber <= 30) ||
		(atomicNumber >= 39 && atomicNumber <= 48) ||
		(atomicNumber >= 72 && atomicNumber <= 80):
		return CategoryTransitionMetal
	case atomicNumber >= 57 && atomicNumber <= 71:
		return CategoryLanthanide
	case atomicNumber >= 89 && atomicNumber <= 103:
		return CategoryActinide
	default:
		return CategoryOtherMetal
	}
}

func inSet(n int, members ...int) bool {
	for _, m := range members {
		if n == m {
			return true
		}
	}
	return false
}
