// Package smiles implements an incremental parser for SMILES line notation.
//
// The parser turns a SMILES string into an ordered sequence of atom- and
// bond-creation events delivered to a Sink. It does not own a molecule
// model: any graph backend can implement Sink and receive the events.
//
// The package is structured in layers:
//
//   - Lexer: scans the input and yields one token per step (a bonded atom
//     with its trailing ring-closure markers, a branch marker, or an error
//     fragment holding the unmatched remainder).
//   - DecodeAtom: normalizes the raw fields of an atom token into an AtomSpec.
//   - Parser: drives the lexer, keeps a branch stack and a ring-closure table
//     per call, and invokes the Sink.
//   - Graph / GraphBuilder: the built-in Sink producing a plain atom/bond graph.
//
// Usage:
//
//	g, err := smiles.Parse("C1CC1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(g.Atoms), len(g.Bonds))
//
// Custom backends construct a Parser with their own Sink:
//
//	p, err := smiles.New(smiles.Config[*MyMol, int, int]{Sink: mySink{}})
//	err = p.Parse(mol, "CC(=O)O")
//
// Aromaticity, valence and stereochemistry are not interpreted. The chirality
// marker is carried through as raw text.
package smiles
