package smiles

import (
	"fmt"
	"io"
	"log/slog"
)

// Config configures a Parser. The zero value of every field is usable.
type Config[S, A, B any] struct {
	// Sink receives the parse events. Nil selects GraphBuilder, which is
	// only possible for Config[*Graph, *Atom, *Bond].
	Sink Sink[S, A, B]

	// Strict rejects input that ends with an open branch or an unclosed
	// ring number. Both are tolerated by default.
	Strict bool

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// Parser converts SMILES strings into Sink events. A Parser holds no
// per-parse state and may be used from several goroutines, provided the
// Sink allows it.
type Parser[S, A, B any] struct {
	sink   Sink[S, A, B]
	strict bool
	log    *slog.Logger
}

// New creates a Parser from cfg.
func New[S, A, B any](cfg Config[S, A, B]) (*Parser[S, A, B], error) {
	sink := cfg.Sink
	if sink == nil {
		var ok bool
		if sink, ok = any(GraphBuilder{}).(Sink[S, A, B]); !ok {
			return nil, ErrNoSink
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser[S, A, B]{sink: sink, strict: cfg.Strict, log: logger}, nil
}

// Parse parses SMILES text src, sending events to the sink with
// state. Returns a *SyntaxError, *StructureError, *RingClosureError,
// *ValueError or *SinkError on failure. Events delivered before the failure
// are not rolled back.
func (p *Parser[S, A, B]) Parse(state S, src string) error {
	ctx := &parseContext[A]{
		lex:      NewLexer(src),
		branches: newBranchStack[A](),
		rings:    make(ringTable[A]),
	}

	for {
		tok := ctx.lex.Next()
		switch tok.Kind {
		case TokenEOF:
			return p.finish(ctx, tok.Pos)

		case TokenBranchOpen:
			ctx.branches.open()

		case TokenBranchClose:
			if !ctx.branches.close() {
				return &StructureError{ParseError{
					Message: "unmatched ')'",
					Pos:     tok.Pos,
				}}
			}

		case TokenAtom:
			if err := p.atom(state, ctx, tok); err != nil {
				return err
			}

		case TokenError:
			return &SyntaxError{
				ParseError: ParseError{Pos: tok.Pos},
				Remainder:  tok.Literal,
			}
		}
	}
}

// parseContext is the mutable state of one Parse call.
type parseContext[A any] struct {
	lex      *Lexer
	branches *branchStack[A]
	rings    ringTable[A]
}

func (p *Parser[S, A, B]) atom(state S, ctx *parseContext[A], tok Token) error {
	spec, err := DecodeAtom(tok)
	if err != nil {
		return err
	}

	atom, err := p.sink.CreateAtom(state, spec)
	if err != nil {
		return sinkError(tok.Pos, "create atom "+tok.Literal, err)
	}
	p.log.Debug("atom", "symbol", spec.Symbol, "col", tok.Pos.Column)

	if prev, ok := ctx.branches.top(); ok {
		if _, err := p.sink.CreateBond(state, tok.Bond, prev, atom); err != nil {
			return sinkError(tok.Pos, "create bond", err)
		}
	} else if tok.Bond != BondNone {
		if d, ok := p.sink.(DanglingBondSink[S]); ok {
			d.DanglingBond(state, tok.Bond, tok.Pos)
		}
	}

	for _, m := range tok.Rings {
		closure, closed, err := ctx.rings.mark(atom, m)
		if err != nil {
			return err
		}
		if !closed {
			continue
		}
		p.log.Debug("ring closure", "ring", m.Number, "bond", closure.bond.String(), "col", m.Pos.Column)
		if _, err := p.sink.CreateBond(state, closure.bond, closure.from, atom); err != nil {
			return sinkError(m.Pos, fmt.Sprintf("create ring bond %d", m.Number), err)
		}
	}

	ctx.branches.setTop(atom)
	return nil
}

func (p *Parser[S, A, B]) finish(ctx *parseContext[A], pos Position) error {
	depth := ctx.branches.depth()
	open := ctx.rings.open()
	if depth > 0 || len(open) > 0 {
		p.log.Debug("end of input with open state", "branches", depth, "rings", open)
	}
	if !p.strict {
		return nil
	}
	if depth > 0 {
		return &StructureError{ParseError{
			Message: fmt.Sprintf("%d unclosed '('", depth),
			Pos:     pos,
		}}
	}
	if len(open) > 0 {
		entry := ctx.rings[open[0]]
		return &RingClosureError{
			ParseError: ParseError{
				Message: fmt.Sprintf("ring %d is never closed", open[0]),
				Pos:     entry.pos,
			},
			Ring:  open[0],
			First: entry.bond,
		}
	}
	return nil
}

func sinkError(pos Position, op string, err error) error {
	return &SinkError{ParseError{
		Message: fmt.Sprintf("%s: %v", op, err),
		Pos:     pos,
		Cause:   err,
	}}
}

// Parse parses src into a Graph using the built-in GraphBuilder.
func Parse(src string) (*Graph, error) {
	return ParseWith(Config[*Graph, *Atom, *Bond]{}, src)
}

// ParseWith parses src into a Graph with cfg. cfg.Sink may be nil.
func ParseWith(cfg Config[*Graph, *Atom, *Bond], src string) (*Graph, error) {
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}
	g := &Graph{}
	if err := p.Parse(g, src); err != nil {
		return nil, err
	}
	return g, nil
}
