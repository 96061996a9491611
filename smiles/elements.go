package smiles

// organicSymbols may be written without brackets.
var organicSymbols = symbolSet(
	"B", "C", "N", "O", "P", "S", "F", "Cl", "Br", "I",
	"b", "c", "n", "o", "p", "s",
	"*",
)

// bracketSymbols may be written inside [...].
var bracketSymbols = symbolSet(
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
	"b", "c", "n", "o", "p", "s", "se", "as", "te",
	"*",
)

func symbolSet(symbols ...string) map[string]bool {
	set := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		set[s] = true
	}
	return set
}

// matchSymbol returns the longest symbol from set that prefixes src.
// Two-letter symbols win over a one-letter symbol that is their prefix.
func matchSymbol(set map[string]bool, src string) string {
	if len(src) >= 2 && set[src[:2]] {
		return src[:2]
	}
	if len(src) >= 1 && set[src[:1]] {
		return src[:1]
	}
	return ""
}

// isAromaticSymbol reports whether sym is written in lowercase.
func isAromaticSymbol(sym string) bool {
	return sym != "" && sym[0] >= 'a' && sym[0] <= 'z'
}
