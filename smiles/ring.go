package smiles

import (
	"fmt"
	"sort"
)

// ringTable holds ring numbers seen once and waiting for their closing mention.
type ringTable[A any] map[int]ringEntry[A]

type ringEntry[A any] struct {
	atom A
	bond BondSymbol
	pos  Position
}

// ringClosure is a resolved pair of mentions that needs a bond.
type ringClosure[A any] struct {
	from A
	bond BondSymbol
}

// mark records the marker on atom. When the ring number is already pending,
// the entry is removed and the closure to bond is returned.
func (t ringTable[A]) mark(atom A, m RingMarker) (ringClosure[A], bool, error) {
	pending, ok := t[m.Number]
	if !ok {
		t[m.Number] = ringEntry[A]{atom: atom, bond: m.Bond, pos: m.Pos}
		return ringClosure[A]{}, false, nil
	}

	bond, ok := reconcileRingBonds(pending.bond, m.Bond)
	if !ok {
		return ringClosure[A]{}, false, &RingClosureError{
			ParseError: ParseError{
				Message: fmt.Sprintf("ring %d closed with %q but opened with %q", m.Number, m.Bond, pending.bond),
				Pos:     m.Pos,
			},
			Ring:   m.Number,
			First:  pending.bond,
			Second: m.Bond,
		}
	}
	delete(t, m.Number)
	return ringClosure[A]{from: pending.atom, bond: bond}, true, nil
}

// open returns the pending ring numbers in ascending order.
func (t ringTable[A]) open() []int {
	rings := make([]int, 0, len(t))
	for n := range t {
		rings = append(rings, n)
	}
	sort.Ints(rings)
	return rings
}
