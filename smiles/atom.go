package smiles

import (
	"fmt"
	"strconv"
	"strings"
)

// AtomSpec holds the normalized fields of an atom.
type AtomSpec struct {
	Isotope       *int   // nil when not written
	Symbol        string // as written, lowercase for aromatic atoms
	Chirality     string // "", "@" or "@@"; not interpreted
	HydrogenCount int
	Charge        int
	Bracketed     bool // written inside [...]; implicit hydrogens do not apply
}

// String renders the atom as a bare symbol when it was written unbracketed
// and that form means the same atom, and in bracket form otherwise.
func (a AtomSpec) String() string {
	bare := a.Isotope == nil && a.Chirality == "" && a.HydrogenCount == 0 && a.Charge == 0
	if bare && !a.Bracketed && organicSymbols[a.Symbol] {
		return a.Symbol
	}
	var b strings.Builder
	b.WriteByte('[')
	if a.Isotope != nil {
		b.WriteString(strconv.Itoa(*a.Isotope))
	}
	b.WriteString(a.Symbol)
	b.WriteString(a.Chirality)
	switch {
	case a.HydrogenCount == 1:
		b.WriteByte('H')
	case a.HydrogenCount > 1:
		fmt.Fprintf(&b, "H%d", a.HydrogenCount)
	}
	switch {
	case a.Charge == 1:
		b.WriteByte('+')
	case a.Charge == -1:
		b.WriteByte('-')
	case a.Charge > 1:
		fmt.Fprintf(&b, "+%d", a.Charge)
	case a.Charge < -1:
		fmt.Fprintf(&b, "-%d", -a.Charge)
	}
	b.WriteByte(']')
	return b.String()
}

// DecodeAtom converts the raw fields of an atom token into an AtomSpec.
// Simple (unbracketed) atoms only carry a symbol; their implicit hydrogens
// are left to valence rules outside this package.
func DecodeAtom(tok Token) (AtomSpec, error) {
	f := tok.Fields
	if !tok.Bracketed {
		return AtomSpec{Symbol: f.Symbol}, nil
	}

	spec := AtomSpec{Symbol: f.Symbol, Chirality: f.Chirality, Bracketed: true}

	if f.Isotope != "" {
		n, err := parseCount(tok, "isotope", f.Isotope)
		if err != nil {
			return AtomSpec{}, err
		}
		spec.Isotope = &n
	}

	switch {
	case f.Hydrogens == "":
	case f.Hydrogens == "H":
		spec.HydrogenCount = 1
	default:
		n, err := parseCount(tok, "hydrogen count", f.Hydrogens[1:])
		if err != nil {
			return AtomSpec{}, err
		}
		spec.HydrogenCount = n
	}

	charge, err := decodeCharge(tok, f.Charge)
	if err != nil {
		return AtomSpec{}, err
	}
	spec.Charge = charge

	return spec, nil
}

// decodeCharge handles "", a run of '+' or '-', or a single sign followed by digits.
func decodeCharge(tok Token, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	sign := 1
	if raw[0] == '-' {
		sign = -1
	}
	digits := strings.TrimLeft(raw, "+-")
	if digits == "" {
		return sign * len(raw), nil
	}
	n, err := parseCount(tok, "charge", digits)
	if err != nil {
		return 0, err
	}
	return sign * n, nil
}

func parseCount(tok Token, field, digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &ValueError{ParseError{
			Message: fmt.Sprintf("invalid %s %q in %q: %v", field, digits, tok.Literal, err),
			Pos:     tok.Pos,
			Cause:   err,
		}}
	}
	return n, nil
}
