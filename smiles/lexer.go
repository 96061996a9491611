package smiles

// Lexer splits SMILES source text into tokens. Each call to Next consumes
// exactly one token: an atom with its leading bond and trailing ring-closure
// markers, a branch marker, or an error fragment covering the rest of the input.
type Lexer struct {
	src string
	pos int // current byte offset
}

// NewLexer creates a new Lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token and advances the lexer. After a TokenError
// or at the end of input it returns TokenEOF.
func (l *Lexer) Next() Token {
	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}
	}

	pos := l.currentPos()
	switch l.peek() {
	case '(':
		l.pos++
		return Token{Kind: TokenBranchOpen, Literal: "(", Pos: pos}
	case ')':
		l.pos++
		return Token{Kind: TokenBranchClose, Literal: ")", Pos: pos}
	}

	tok, ok := l.scanAtom()
	if !ok {
		return l.errorFragment(pos)
	}
	return tok
}

func (l *Lexer) currentPos() Position {
	return Position{Column: l.pos + 1, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	return l.peekAt(l.pos)
}

func (l *Lexer) peekAt(i int) byte {
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

// errorFragment consumes the rest of the input starting at pos.
func (l *Lexer) errorFragment(pos Position) Token {
	l.pos = len(l.src)
	return Token{Kind: TokenError, Literal: l.src[pos.Offset:], Pos: pos}
}

func (l *Lexer) scanAtom() (Token, bool) {
	start := l.pos
	tok := Token{Kind: TokenAtom, Pos: l.currentPos()}

	if isBondSymbol(l.peek()) {
		tok.Bond = BondSymbol(l.peek())
		l.pos++
	}

	var ok bool
	if l.peek() == '[' {
		tok.Bracketed = true
		ok = l.scanBracketAtom(&tok.Fields)
	} else {
		tok.Fields.Symbol = matchSymbol(organicSymbols, l.src[l.pos:])
		l.pos += len(tok.Fields.Symbol)
		ok = tok.Fields.Symbol != ""
	}
	if !ok {
		l.pos = start
		return Token{}, false
	}

	tok.Rings = l.scanRingMarkers()
	tok.Literal = l.src[start:l.pos]
	return tok, true
}

// scanBracketAtom scans '[' isotope? symbol chirality? hcount? charge? ']'.
func (l *Lexer) scanBracketAtom(f *AtomFields) bool {
	l.pos++ // consume [

	f.Isotope = l.scanDigits()

	f.Symbol = matchSymbol(bracketSymbols, l.src[l.pos:])
	if f.Symbol == "" {
		return false
	}
	l.pos += len(f.Symbol)

	start := l.pos
	for i := 0; i < 2 && l.peek() == '@'; i++ {
		l.pos++
	}
	f.Chirality = l.src[start:l.pos]

	if l.peek() == 'H' {
		start = l.pos
		l.pos++
		l.scanDigits()
		f.Hydrogens = l.src[start:l.pos]
	}

	if sign := l.peek(); sign == '+' || sign == '-' {
		start = l.pos
		for l.peek() == sign {
			l.pos++
		}
		if l.pos-start == 1 {
			l.scanDigits()
		}
		f.Charge = l.src[start:l.pos]
	}

	if l.peek() != ']' {
		return false
	}
	l.pos++
	return true
}

// scanRingMarkers consumes (bond? (digit | '%' digit digit))*.
func (l *Lexer) scanRingMarkers() []RingMarker {
	var rings []RingMarker
	for {
		marker := RingMarker{Pos: l.currentPos()}
		i := l.pos
		if isBondSymbol(l.peekAt(i)) {
			marker.Bond = BondSymbol(l.peekAt(i))
			i++
		}

		switch {
		case isDigit(l.peekAt(i)):
			marker.Number = int(l.peekAt(i) - '0')
			i++
		case l.peekAt(i) == '%' && isDigit(l.peekAt(i+1)) && isDigit(l.peekAt(i+2)):
			marker.Number = int(l.peekAt(i+1)-'0')*10 + int(l.peekAt(i+2)-'0')
			i += 3
		default:
			// A bond symbol not followed by a ring number belongs to the next atom.
			return rings
		}

		l.pos = i
		rings = append(rings, marker)
	}
}

func (l *Lexer) scanDigits() string {
	start := l.pos
	for isDigit(l.peek()) {
		l.pos++
	}
	return l.src[start:l.pos]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
