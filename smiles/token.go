package smiles

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF         TokenKind = iota
	TokenAtom        // bond? (simple | [bracketed]) ring-closures*
	TokenBranchOpen  // (
	TokenBranchClose // )
	TokenError       // unmatched remainder of the input
)

var tokenNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenAtom:        "atom",
	TokenBranchOpen:  "'('",
	TokenBranchClose: "')'",
	TokenError:       "error",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Position tracks a source location for error messages.
type Position struct {
	Column int // 1-based column
	Offset int // 0-based byte offset into source
}

// AtomFields holds the raw, undecoded text of each field of an atom token.
// Empty strings mark absent fields.
type AtomFields struct {
	Isotope   string // digits
	Symbol    string
	Chirality string // "", "@" or "@@"
	Hydrogens string // "", "H" or "H<digits>"
	Charge    string // "+", "++", "-3", ...
}

// RingMarker is one ring-closure reference trailing an atom.
type RingMarker struct {
	Bond   BondSymbol
	Number int // 0-99
	Pos    Position
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind      TokenKind
	Literal   string // raw matched text; the remainder for TokenError
	Pos       Position
	Bond      BondSymbol // leading bond symbol of an atom token
	Bracketed bool
	Fields    AtomFields
	Rings     []RingMarker
}
