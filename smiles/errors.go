package smiles

import (
	"errors"
	"fmt"
)

// ErrNoSink is returned by New when no Sink is configured and the parser's
// type parameters do not match the built-in GraphBuilder.
var ErrNoSink = errors.New("smiles: no sink configured")

// ParseError is the base error type for all smiles parse errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Column > 0 {
		return fmt.Sprintf("col %d: %s", e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// SyntaxError reports input that matches no token form. Remainder holds the
// unmatched text from the failing position to the end of the input.
type SyntaxError struct {
	ParseError
	Remainder string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("col %d: unexpected %q", e.Pos.Column, e.Remainder)
}

// StructureError reports an unbalanced branch: a ')' with no matching '(',
// or, in strict mode, a '(' still open at the end of input.
type StructureError struct{ ParseError }

// RingClosureError reports a ring number closed with two different bond
// symbols or, in strict mode, a ring number left open at the end of input.
type RingClosureError struct {
	ParseError
	Ring   int
	First  BondSymbol
	Second BondSymbol
}

// ValueError reports an atom field that cannot be converted (integer overflow).
type ValueError struct{ ParseError }

// SinkError wraps an error returned by a Sink.
type SinkError struct{ ParseError }
