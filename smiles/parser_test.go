package smiles

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink logs every event as text. Atom handles are sequence numbers.
type recordingSink struct{}

type recording struct {
	events []string
	atoms  int
}

func (recordingSink) CreateAtom(r *recording, spec AtomSpec) (int, error) {
	r.atoms++
	r.events = append(r.events, "atom "+spec.String())
	return r.atoms - 1, nil
}

func (recordingSink) CreateBond(r *recording, bond BondSymbol, from, to int) (string, error) {
	e := fmt.Sprintf("bond %d-%d order=%d", from, to, bond.Order())
	r.events = append(r.events, e)
	return e, nil
}

func record(t *testing.T, p *Parser[*recording, int, string], src string) []string {
	t.Helper()
	r := &recording{}
	require.NoError(t, p.Parse(r, src))
	return r.events
}

func newRecordingParser(t *testing.T) *Parser[*recording, int, string] {
	t.Helper()
	p, err := New(Config[*recording, int, string]{Sink: recordingSink{}})
	require.NoError(t, err)
	return p
}

func mustParse(t *testing.T, src string) *Graph {
	t.Helper()
	g, err := Parse(src)
	require.NoError(t, err, "input: %s", src)
	return g
}

type bondView struct {
	From, To, Order int
}

func bondViews(g *Graph) []bondView {
	views := make([]bondView, len(g.Bonds))
	for i, b := range g.Bonds {
		views[i] = bondView{b.From, b.To, b.Order}
	}
	return views
}

func TestParseSingleAtom(t *testing.T) {
	g := mustParse(t, "C")
	require.Len(t, g.Atoms, 1)
	assert.Equal(t, "C", g.Atoms[0].Symbol)
	assert.Empty(t, g.Bonds)
}

func TestParseEmpty(t *testing.T) {
	g := mustParse(t, "")
	assert.Empty(t, g.Atoms)
	assert.Empty(t, g.Bonds)
}

func TestParseChain(t *testing.T) {
	g := mustParse(t, "CC")
	require.Len(t, g.Atoms, 2)
	assert.Equal(t, []bondView{{0, 1, 1}}, bondViews(g))
}

func TestParseDoubleBond(t *testing.T) {
	g := mustParse(t, "C=C")
	require.Len(t, g.Atoms, 2)
	assert.Equal(t, []bondView{{0, 1, 2}}, bondViews(g))
	assert.Equal(t, KindDouble, g.Bonds[0].Kind)
}

func TestParseRing(t *testing.T) {
	g := mustParse(t, "C1CC1")
	require.Len(t, g.Atoms, 3)
	assert.Equal(t, []bondView{{0, 1, 1}, {1, 2, 1}, {0, 2, 1}}, bondViews(g))
	assert.Len(t, g.Components(), 1)
}

func TestParseBranch(t *testing.T) {
	g := mustParse(t, "C(=O)O")
	require.Len(t, g.Atoms, 3)
	assert.Equal(t, []bondView{{0, 1, 2}, {0, 2, 1}}, bondViews(g))
}

func TestParseNestedBranches(t *testing.T) {
	g := mustParse(t, "CC(C(C)C)(N)O")
	require.Len(t, g.Atoms, 7)
	assert.Equal(t, []bondView{
		{0, 1, 1}, // C-C
		{1, 2, 1}, // branch C
		{2, 3, 1}, // inner branch C
		{2, 4, 1}, // back on branch C
		{1, 5, 1}, // second branch N
		{1, 6, 1}, // main chain O
	}, bondViews(g))
}

func TestParseRingNumberReuse(t *testing.T) {
	g := mustParse(t, "C1CC1CC1CC1")
	require.Len(t, g.Atoms, 7)
	assert.Equal(t, []bondView{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 1},
		{2, 3, 1}, {3, 4, 1}, {4, 5, 1}, {5, 6, 1}, {4, 6, 1},
	}, bondViews(g))
}

func TestParseRingBondSymbols(t *testing.T) {
	tests := []struct {
		input string
		order int
	}{
		{"C=1CC1", 2},
		{"C1CC=1", 2},
		{"C=1CC=1", 2},
		{"C#1CC1", 3},
		{"C1CC1", 1},
	}
	for _, tt := range tests {
		g := mustParse(t, tt.input)
		require.Len(t, g.Bonds, 3, "input: %s", tt.input)
		assert.Equal(t, bondView{0, 2, tt.order}, bondViews(g)[2], "input: %s", tt.input)
	}
}

func TestParseTwoDigitRing(t *testing.T) {
	g := mustParse(t, "C%10CC%10")
	assert.Equal(t, bondView{0, 2, 1}, bondViews(g)[2])

	// %05 and 5 name the same ring.
	g = mustParse(t, "C%05CC5")
	assert.Len(t, g.Bonds, 3)
}

func TestParseRingClosureMismatch(t *testing.T) {
	_, err := Parse("C=1CC-1")
	require.Error(t, err)
	var rce *RingClosureError
	require.ErrorAs(t, err, &rce)
	assert.Equal(t, 1, rce.Ring)
	assert.Equal(t, BondDouble, rce.First)
	assert.Equal(t, BondSingle, rce.Second)
	assert.Equal(t, 6, rce.Pos.Column)
}

func TestParseUnmatchedBranchClose(t *testing.T) {
	_, err := Parse("C)C")
	require.Error(t, err)
	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Pos.Column)
	assert.Contains(t, err.Error(), "unmatched ')'")
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("CC[Xx]CC")
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "[Xx]CC", se.Remainder)
	assert.Equal(t, 3, se.Pos.Column)
	assert.Equal(t, `col 3: unexpected "[Xx]CC"`, err.Error())
}

func TestParseBracketAtomFields(t *testing.T) {
	g := mustParse(t, "[13CH3-]")
	require.Len(t, g.Atoms, 1)
	a := g.Atoms[0]
	require.NotNil(t, a.Isotope)
	assert.Equal(t, 13, *a.Isotope)
	assert.Equal(t, "C", a.Symbol)
	assert.Equal(t, 3, a.HydrogenCount)
	assert.Equal(t, -1, a.Charge)
}

func TestParseEquivalentCharges(t *testing.T) {
	for _, src := range []string{"[N+]", "[N++]", "[N+2]"} {
		g := mustParse(t, src)
		require.Len(t, g.Atoms, 1)
	}
	assert.Equal(t, 1, mustParse(t, "[N+]").Atoms[0].Charge)
	assert.Equal(t, mustParse(t, "[N++]").Atoms[0].Charge, mustParse(t, "[N+2]").Atoms[0].Charge)
	assert.Equal(t, 2, mustParse(t, "[N+2]").Atoms[0].Charge)
}

func TestParseDotIsDisconnectedBond(t *testing.T) {
	g := mustParse(t, "[Na+].[Cl-]")
	require.Len(t, g.Atoms, 2)
	require.Len(t, g.Bonds, 1)
	assert.Equal(t, KindDisconnected, g.Bonds[0].Kind)
	assert.Equal(t, 0, g.Bonds[0].Order)
	assert.Len(t, g.Components(), 2)
	assert.Empty(t, g.Neighbors(0))
}

func TestParseAromatic(t *testing.T) {
	g := mustParse(t, "c1ccccc1")
	require.Len(t, g.Atoms, 6)
	require.Len(t, g.Bonds, 6)
	for _, a := range g.Atoms {
		assert.True(t, a.Aromatic)
	}
	for _, b := range g.Bonds {
		assert.Equal(t, 1, b.Order)
	}
}

func TestParseStereoBondsAreSingle(t *testing.T) {
	g := mustParse(t, `F/C=C\F`)
	assert.Equal(t, []bondView{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}}, bondViews(g))
	assert.Equal(t, BondUp, g.Bonds[0].Symbol)
	assert.Equal(t, BondDown, g.Bonds[2].Symbol)
}

func TestParseLeadingBondIsDangling(t *testing.T) {
	g := mustParse(t, "=CC")
	assert.Len(t, g.Bonds, 1)
	require.Len(t, g.DanglingBonds, 1)
	assert.Equal(t, BondDouble, g.DanglingBonds[0].Symbol)
	assert.Equal(t, 1, g.DanglingBonds[0].Pos.Column)

	g = mustParse(t, "(=C)C")
	require.Len(t, g.Atoms, 2)
	assert.Empty(t, g.Bonds)
	require.Len(t, g.DanglingBonds, 1)
	assert.Equal(t, BondDouble, g.DanglingBonds[0].Symbol)
	assert.Equal(t, 2, g.DanglingBonds[0].Pos.Column)
}

func TestParseBranchAtStart(t *testing.T) {
	g := mustParse(t, "(C)C")
	require.Len(t, g.Atoms, 2)
	assert.Empty(t, g.Bonds)
}

func TestParseUnterminatedBranchTolerated(t *testing.T) {
	g := mustParse(t, "CC(C")
	assert.Len(t, g.Atoms, 3)
	assert.Len(t, g.Bonds, 2)
}

func TestParseUnclosedRingTolerated(t *testing.T) {
	g := mustParse(t, "C1CC")
	assert.Len(t, g.Bonds, 2)
}

func TestParseStrictRejectsOpenState(t *testing.T) {
	cfg := Config[*Graph, *Atom, *Bond]{Strict: true}

	_, err := ParseWith(cfg, "CC(C")
	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Error(), "1 unclosed '('")

	_, err = ParseWith(cfg, "C2CC1")
	var rce *RingClosureError
	require.ErrorAs(t, err, &rce)
	assert.Equal(t, 1, rce.Ring)
	assert.Equal(t, 5, rce.Pos.Column)

	_, err = ParseWith(cfg, "C1CC1C(C)C")
	assert.NoError(t, err)
}

func TestParseIdempotent(t *testing.T) {
	p := newRecordingParser(t)
	inputs := []string{"C1CC1CC1CC1", "CC(=O)O[C@@H](N)C", "[Na+].[Cl-]", "c1ccc2ccccc2c1"}
	for _, src := range inputs {
		first := record(t, p, src)
		second := record(t, p, src)
		assert.Equal(t, first, second, "input: %s", src)

		other := newRecordingParser(t)
		assert.Equal(t, first, record(t, other, src), "input: %s", src)
	}
}

func TestParseEventOrder(t *testing.T) {
	p := newRecordingParser(t)
	assert.Equal(t, []string{
		"atom C",
		"atom C",
		"bond 0-1 order=1",
		"atom O",
		"bond 1-2 order=1",
		"bond 0-2 order=2",
	}, record(t, p, "C=1CO1"))
}

func TestParseStateNotCarriedAcrossCalls(t *testing.T) {
	p := newRecordingParser(t)

	// A failed parse leaves an open ring and branch behind.
	err := p.Parse(&recording{}, "C1C(C)C)")
	require.Error(t, err)

	assert.Equal(t, []string{"atom C", "atom C", "bond 0-1 order=1"}, record(t, p, "C1C"))
}

func TestParseConcurrent(t *testing.T) {
	p := newRecordingParser(t)
	want := record(t, p, "CC(C)(C)c1ccccc1O")

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := &recording{}
			if err := p.Parse(r, "CC(C)(C)c1ccccc1O"); err == nil {
				results[i] = r.events
			}
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

type failingSink struct {
	failAt int
}

var errSinkFull = errors.New("sink full")

func (s failingSink) CreateAtom(n *int, spec AtomSpec) (int, error) {
	if *n == s.failAt {
		return 0, errSinkFull
	}
	*n++
	return *n, nil
}

func (failingSink) CreateBond(_ *int, _ BondSymbol, _, _ int) (struct{}, error) {
	return struct{}{}, nil
}

func TestParseSinkErrorAborts(t *testing.T) {
	p, err := New(Config[*int, int, struct{}]{Sink: failingSink{failAt: 2}})
	require.NoError(t, err)

	created := 0
	err = p.Parse(&created, "CCCC")
	require.Error(t, err)
	var se *SinkError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, errSinkFull)
	assert.Equal(t, 2, created)
	assert.Equal(t, 3, se.Pos.Column)
}

func TestNewWithoutSink(t *testing.T) {
	_, err := New(Config[*recording, int, string]{})
	assert.ErrorIs(t, err, ErrNoSink)

	p, err := New(Config[*Graph, *Atom, *Bond]{})
	require.NoError(t, err)
	g := &Graph{}
	require.NoError(t, p.Parse(g, "CO"))
	assert.Len(t, g.Atoms, 2)
}
