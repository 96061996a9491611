package smiles

// Sink receives atom and bond creation events from a Parser. S is the
// caller's state, passed through unmodified. A and B are the handles the
// sink returns for atoms and bonds; the parser only stores atom handles
// and never inspects them.
type Sink[S, A, B any] interface {
	CreateAtom(state S, spec AtomSpec) (A, error)
	CreateBond(state S, bond BondSymbol, from, to A) (B, error)
}

// DanglingBondSink is implemented by sinks that want to hear about a bond
// symbol written before an atom that has nothing to attach to, such as the
// '=' in "=C".
type DanglingBondSink[S any] interface {
	DanglingBond(state S, bond BondSymbol, pos Position)
}
