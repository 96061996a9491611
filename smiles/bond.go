package smiles

// BondSymbol is the raw bond character written in the input.
// BondNone means no symbol was written.
type BondSymbol byte

const (
	BondNone     BondSymbol = 0
	BondSingle   BondSymbol = '-'
	BondDouble   BondSymbol = '='
	BondTriple   BondSymbol = '#'
	BondAromatic BondSymbol = ':'
	BondDot      BondSymbol = '.'
	BondUp       BondSymbol = '/'
	BondDown     BondSymbol = '\\'
)

// BondKind classifies a bond symbol for graph backends.
type BondKind string

const (
	KindSingle       BondKind = "single"
	KindDouble       BondKind = "double"
	KindTriple       BondKind = "triple"
	KindAromatic     BondKind = "aromatic"
	KindDisconnected BondKind = "disconnected"
)

func isBondSymbol(ch byte) bool {
	switch BondSymbol(ch) {
	case BondSingle, BondDouble, BondTriple, BondAromatic, BondDot, BondUp, BondDown:
		return true
	}
	return false
}

// Order returns the bond multiplicity. The '.' symbol has order 0: it marks
// two atoms as explicitly not bonded.
func (b BondSymbol) Order() int {
	switch b {
	case BondDouble:
		return 2
	case BondTriple:
		return 3
	case BondDot:
		return 0
	default:
		return 1
	}
}

// Kind returns the classification of the bond symbol. Stereo markers
// ('/' and '\') are single bonds.
func (b BondSymbol) Kind() BondKind {
	switch b {
	case BondDouble:
		return KindDouble
	case BondTriple:
		return KindTriple
	case BondAromatic:
		return KindAromatic
	case BondDot:
		return KindDisconnected
	default:
		return KindSingle
	}
}

func (b BondSymbol) String() string {
	if b == BondNone {
		return ""
	}
	return string(rune(b))
}

// reconcileRingBonds combines the bond symbols written at the two mentions of
// a ring number. An unspecified symbol defers to the other one.
func reconcileRingBonds(first, second BondSymbol) (BondSymbol, bool) {
	switch {
	case first == BondNone:
		return second, true
	case second == BondNone, first == second:
		return first, true
	default:
		return BondNone, false
	}
}
