package smiles

// branchStack tracks the atom the next bond attaches to across nested
// branches. It starts with one empty slot and is never popped below it.
type branchStack[A any] struct {
	slots []branchSlot[A]
}

type branchSlot[A any] struct {
	atom A
	set  bool
}

func newBranchStack[A any]() *branchStack[A] {
	return &branchStack[A]{slots: make([]branchSlot[A], 1, 8)}
}

// open starts a branch attached to the current top.
func (s *branchStack[A]) open() {
	s.slots = append(s.slots, s.slots[len(s.slots)-1])
}

// close ends the innermost branch. It reports false when no branch is open.
func (s *branchStack[A]) close() bool {
	if len(s.slots) == 1 {
		return false
	}
	s.slots = s.slots[:len(s.slots)-1]
	return true
}

// top returns the current attachment atom, if any atom has been placed.
func (s *branchStack[A]) top() (A, bool) {
	slot := s.slots[len(s.slots)-1]
	return slot.atom, slot.set
}

func (s *branchStack[A]) setTop(atom A) {
	s.slots[len(s.slots)-1] = branchSlot[A]{atom: atom, set: true}
}

// depth is the number of open branches.
func (s *branchStack[A]) depth() int {
	return len(s.slots) - 1
}
