package periodic

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound reports a symbol absent from the table.
var ErrNotFound = errors.New("element not found")

// Table is the immutable element dataset: the first 36 elements plus
// selected heavier ones (the alchemical metals among them). Symbol matching
// is exact and case-sensitive as stored; "CL" is not chlorine, and no
// normalization is attempted.
type Table struct {
	records map[string]Record
	names   map[string]string
	symbols []string // ascending atomic number
}

// NewTable builds the built-in dataset.
func NewTable() *Table {
	records := map[string]Record{
		// Period 1
		"H":  {"H", 1, 1.008, 13.598, Chi(2.20), 53, "1s1"},
		"He": {"He", 2, 4.003, 24.587, NoChi, 31, "1s2"},

		// Period 2
		"Li": {"Li", 3, 6.941, 5.392, Chi(0.98), 167, "[He]2s1"},
		"Be": {"Be", 4, 9.012, 9.323, Chi(1.57), 112, "[He]2s2"},
		"B":  {"B", 5, 10.81, 8.298, Chi(2.04), 87, "[He]2s2 2p1"},
		"C":  {"C", 6, 12.01, 11.260, Chi(2.55), 77, "[He]2s2 2p2"},
		"N":  {"N", 7, 14.01, 14.534, Chi(3.04), 75, "[He]2s2 2p3"},
		"O":  {"O", 8, 16.00, 13.618, Chi(3.44), 73, "[He]2s2 2p4"},
		"F":  {"F", 9, 19.00, 17.423, Chi(3.98), 71, "[He]2s2 2p5"},
		"Ne": {"Ne", 10, 20.18, 21.565, NoChi, 69, "[He]2s2 2p6"},

		// Period 3
		"Na": {"Na", 11, 22.99, 5.139, Chi(0.93), 190, "[Ne]3s1"},
		"Mg": {"Mg", 12, 24.31, 7.646, Chi(1.31), 160, "[Ne]3s2"},
		"Al": {"Al", 13, 26.98, 5.986, Chi(1.61), 143, "[Ne]3s2 3p1"},
		"Si": {"Si", 14, 28.09, 8.152, Chi(1.90), 118, "[Ne]3s2 3p2"},
		"P":  {"P", 15, 30.97, 10.487, Chi(2.19), 110, "[Ne]3s2 3p3"},
		"S":  {"S", 16, 32.07, 10.360, Chi(2.58), 103, "[Ne]3s2 3p4"},
		"Cl": {"Cl", 17, 35.45, 12.968, Chi(3.16), 99, "[Ne]3s2 3p5"},
		"Ar": {"Ar", 18, 39.95, 15.760, NoChi, 97, "[Ne]3s2 3p6"},

		// Period 4
		"K":  {"K", 19, 39.10, 4.341, Chi(0.82), 243, "[Ar]4s1"},
		"Ca": {"Ca", 20, 40.08, 6.113, Chi(1.00), 194, "[Ar]4s2"},
		"Sc": {"Sc", 21, 44.96, 6.561, Chi(1.36), 184, "[Ar]3d1 4s2"},
		"Ti": {"Ti", 22, 47.87, 6.828, Chi(1.54), 176, "[Ar]3d2 4s2"},
		"V":  {"V", 23, 50.94, 6.746, Chi(1.63), 171, "[Ar]3d3 4s2"},
		"Cr": {"Cr", 24, 52.00, 6.767, Chi(1.66), 166, "[Ar]3d5 4s1"},
		"Mn": {"Mn", 25, 54.94, 7.434, Chi(1.55), 161, "[Ar]3d5 4s2"},
		"Fe": {"Fe", 26, 55.85, 7.902, Chi(1.83), 156, "[Ar]3d6 4s2"},
		"Co": {"Co", 27, 58.93, 7.881, Chi(1.88), 152, "[Ar]3d7 4s2"},
		"Ni": {"Ni", 28, 58.69, 7.640, Chi(1.91), 149, "[Ar]3d8 4s2"},
		"Cu": {"Cu", 29, 63.55, 7.726, Chi(1.90), 145, "[Ar]3d10 4s1"},
		"Zn": {"Zn", 30, 65.38, 9.394, Chi(1.65), 142, "[Ar]3d10 4s2"},
		"Ga": {"Ga", 31, 69.72, 5.999, Chi(1.81), 136, "[Ar]3d10 4s2 4p1"},
		"Ge": {"Ge", 32, 72.63, 7.900, Chi(2.01), 125, "[Ar]3d10 4s2 4p2"},
		"As": {"As", 33, 74.92, 9.815, Chi(2.18), 114, "[Ar]3d10 4s2 4p3"},
		"Se": {"Se", 34, 78.97, 9.752, Chi(2.55), 103, "[Ar]3d10 4s2 4p4"},
		"Br": {"Br", 35, 79.90, 11.814, Chi(2.96), 94, "[Ar]3d10 4s2 4p5"},
		"Kr": {"Kr", 36, 83.80, 14.000, NoChi, 88, "[Ar]3d10 4s2 4p6"},

		// Selected heavier elements, the seven alchemical metals among them.
		"Rb": {"Rb", 37, 85.47, 4.177, Chi(0.82), 265, "[Kr]5s1"},
		"Sr": {"Sr", 38, 87.62, 5.695, Chi(0.95), 219, "[Kr]5s2"},
		"Ag": {"Ag", 47, 107.87, 7.576, Chi(1.93), 165, "[Kr]4d10 5s1"},
		"Sn": {"Sn", 50, 118.71, 7.344, Chi(1.96), 145, "[Kr]4d10 5s2 5p2"},
		"I":  {"I", 53, 126.90, 10.451, Chi(2.66), 133, "[Kr]4d10 5s2 5p5"},
		"Cs": {"Cs", 55, 132.91, 3.894, Chi(0.79), 298, "[Xe]6s1"},
		"Ba": {"Ba", 56, 137.33, 5.212, Chi(0.89), 253, "[Xe]6s2"},
		"Au": {"Au", 79, 196.97, 9.226, Chi(2.54), 174, "[Xe]4f14 5d10 6s1"},
		"Hg": {"Hg", 80, 200.59, 10.438, Chi(2.00), 171, "[Xe]4f14 5d10 6s2"},
		"Pb": {"Pb", 82, 207.2, 7.417, Chi(2.33), 154, "[Xe]4f14 5d10 6s2 6p2"},
		"U":  {"U", 92, 238.03, 6.194, Chi(1.38), 196, "[Rn]5f3 6d1 7s2"},
	}

	names := map[string]string{
		"H": "Hydrogen", "He": "Helium", "Li": "Lithium", "Be": "Beryllium",
		"B": "Boron", "C": "Carbon", "N": "Nitrogen", "O": "Oxygen",
		"F": "Fluorine", "Ne": "Neon", "Na": "Sodium", "Mg": "Magnesium",
		"Al": "Aluminum", "Si": "Silicon", "P": "Phosphorus", "S": "Sulfur",
		"Cl": "Chlorine", "Ar": "Argon", "K": "Potassium", "Ca": "Calcium",
		"Sc": "Scandium", "Ti": "Titanium", "V": "Vanadium", "Cr": "Chromium",
		"Mn": "Manganese", "Fe": "Iron", "Co": "Cobalt", "Ni": "Nickel",
		"Cu": "Copper", "Zn": "Zinc", "Ga": "Gallium", "Ge": "Germanium",
		"As": "Arsenic", "Se": "Selenium", "Br": "Bromine", "Kr": "Krypton",
		"Rb": "Rubidium", "Sr": "Strontium", "Ag": "Silver", "Sn": "Tin",
		"I": "Iodine", "Cs": "Cesium", "Ba": "Barium", "Au": "Gold",
		"Hg": "Mercury", "Pb": "Lead", "U": "Uranium",
	}

	symbols := make([]string, 0, len(records))
	for sym := range records {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return records[symbols[i]].AtomicNumber < records[symbols[j]].AtomicNumber
	})

	return &Table{records: records, names: names, symbols: symbols}
}

// Lookup returns the raw record for a symbol, or ErrNotFound.
func (t *Table) Lookup(symbol string) (Record, error) {
	rec, ok := t.records[symbol]
	if !ok {
		return Record{}, fmt.Errorf("lookup %q: %w", symbol, ErrNotFound)
	}
	return rec, nil
}

// NameOf returns the element name for a symbol, falling back to the symbol
// itself when no name is known.
func (t *Table) NameOf(symbol string) string {
	if name, ok := t.names[symbol]; ok {
		return name
	}
	return symbol
}

// Symbols returns every known symbol in ascending atomic-number order.
// The returned slice is a copy; callers may reorder it freely.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// Len returns the number of elements in the table.
func (t *Table) Len() int {
	return len(t.records)
}
