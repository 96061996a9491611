package smiles

import (
	"fmt"
	"sort"
	"strings"
)

// Atom is an atom of a parsed Graph.
type Atom struct {
	Index         int      `json:"index" yaml:"index" toml:"index"` // 0-based, in input order
	Symbol        string   `json:"symbol" yaml:"symbol" toml:"symbol"`
	Isotope       *int     `json:"isotope,omitempty" yaml:"isotope,omitempty" toml:"isotope,omitempty"`
	Chirality     string   `json:"chirality,omitempty" yaml:"chirality,omitempty" toml:"chirality,omitempty"`
	HydrogenCount int      `json:"hydrogens" yaml:"hydrogens" toml:"hydrogens"`
	Charge        int      `json:"charge" yaml:"charge" toml:"charge"`
	Aromatic      bool     `json:"aromatic,omitempty" yaml:"aromatic,omitempty" toml:"aromatic,omitempty"`
	Spec          AtomSpec `json:"-" yaml:"-" toml:"-"`
}

// Bond joins two atoms of a parsed Graph.
type Bond struct {
	Index  int        `json:"index" yaml:"index" toml:"index"`
	From   int        `json:"from" yaml:"from" toml:"from"` // atom index
	To     int        `json:"to" yaml:"to" toml:"to"`
	Symbol BondSymbol `json:"-" yaml:"-" toml:"-"`
	Order  int        `json:"order" yaml:"order" toml:"order"`
	Kind   BondKind   `json:"kind" yaml:"kind" toml:"kind"`
}

// DanglingBond is a bond symbol that had no atom to attach to.
type DanglingBond struct {
	Symbol BondSymbol
	Pos    Position
}

// Graph is a plain atom/bond graph built by GraphBuilder.
type Graph struct {
	Atoms         []*Atom
	Bonds         []*Bond // includes disconnected ('.') bonds
	DanglingBonds []DanglingBond
}

// GraphBuilder is the default Sink. It appends atoms and bonds to a *Graph.
type GraphBuilder struct{}

func (GraphBuilder) CreateAtom(g *Graph, spec AtomSpec) (*Atom, error) {
	a := &Atom{
		Index:         len(g.Atoms),
		Symbol:        spec.Symbol,
		Isotope:       spec.Isotope,
		Chirality:     spec.Chirality,
		HydrogenCount: spec.HydrogenCount,
		Charge:        spec.Charge,
		Aromatic:      isAromaticSymbol(spec.Symbol),
		Spec:          spec,
	}
	g.Atoms = append(g.Atoms, a)
	return a, nil
}

func (GraphBuilder) CreateBond(g *Graph, symbol BondSymbol, from, to *Atom) (*Bond, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("bond %q has a nil endpoint", symbol)
	}
	b := &Bond{
		Index:  len(g.Bonds),
		From:   from.Index,
		To:     to.Index,
		Symbol: symbol,
		Order:  symbol.Order(),
		Kind:   symbol.Kind(),
	}
	g.Bonds = append(g.Bonds, b)
	return b, nil
}

func (GraphBuilder) DanglingBond(g *Graph, symbol BondSymbol, pos Position) {
	g.DanglingBonds = append(g.DanglingBonds, DanglingBond{Symbol: symbol, Pos: pos})
}

// AtomAt returns the atom with the given index, or nil if out of range.
func (g *Graph) AtomAt(i int) *Atom {
	if i < 0 || i >= len(g.Atoms) {
		return nil
	}
	return g.Atoms[i]
}

// BondsOf returns all bonds touching the atom, including disconnected ones.
func (g *Graph) BondsOf(atom int) []*Bond {
	var result []*Bond
	for _, b := range g.Bonds {
		if b.From == atom || b.To == atom {
			result = append(result, b)
		}
	}
	return result
}

// Neighbors returns the indices of atoms bonded to atom, in bond order.
// Disconnected bonds are skipped.
func (g *Graph) Neighbors(atom int) []int {
	var result []int
	for _, b := range g.BondsOf(atom) {
		if b.Kind == KindDisconnected {
			continue
		}
		if b.From == atom {
			result = append(result, b.To)
		} else {
			result = append(result, b.From)
		}
	}
	return result
}

// Components groups atom indices into connected components, ignoring
// disconnected bonds. Components are ordered by their lowest atom index.
func (g *Graph) Components() [][]int {
	parent := make([]int, len(g.Atoms))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	for _, b := range g.Bonds {
		if b.Kind == KindDisconnected {
			continue
		}
		ra, rb := find(b.From), find(b.To)
		if ra == rb {
			continue
		}
		if ra < rb {
			parent[rb] = ra
		} else {
			parent[ra] = rb
		}
	}

	var components [][]int
	index := make(map[int]int)
	for i := range g.Atoms {
		root := find(i)
		c, ok := index[root]
		if !ok {
			c = len(components)
			index[root] = c
			components = append(components, nil)
		}
		components[c] = append(components[c], i)
	}
	return components
}

// Formula returns the Hill-order formula of the explicit atoms and bracket
// hydrogens. Implicit hydrogens of unbracketed atoms are not counted.
// Wildcard atoms are skipped.
func (g *Graph) Formula() string {
	counts := make(map[string]int)
	for _, a := range g.Atoms {
		if a.Symbol != "*" {
			counts[elementName(a.Symbol)]++
		}
		if a.HydrogenCount > 0 {
			counts["H"] += a.HydrogenCount
		}
	}

	var order []string
	if counts["C"] > 0 {
		order = append(order, "C")
		if counts["H"] > 0 {
			order = append(order, "H")
		}
	}
	var rest []string
	for sym := range counts {
		if len(order) > 0 && (sym == "C" || sym == "H") {
			continue
		}
		rest = append(rest, sym)
	}
	sort.Strings(rest)
	order = append(order, rest...)

	var b strings.Builder
	for _, sym := range order {
		b.WriteString(sym)
		if n := counts[sym]; n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	return b.String()
}

// elementName capitalizes an aromatic symbol ("se" -> "Se").
func elementName(sym string) string {
	if !isAromaticSymbol(sym) {
		return sym
	}
	return strings.ToUpper(sym[:1]) + sym[1:]
}
