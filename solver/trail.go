package solver

import "github.com/ericr/tuesday/tribool"

// undoType discriminates the reversible effects recorded on the trail.
type undoType uint8

const (
	undoAssignment undoType = iota
	undoClauseSatisfy
	undoWatchAdd
	undoWatchRemove
)

// undoEntry is one reversible effect. key is a variable id for assignment
// entries and a dense literal index for watch entries; clause is a clause
// index for all but assignment entries.
type undoEntry struct {
	typ    undoType
	key    int
	clause int
}

// checkpoint returns the current trail position for a later rewindTo.
func (s *Solver) checkpoint() int {
	return len(s.trail)
}

// pushAssignment records that variable v was assigned.
func (s *Solver) pushAssignment(v int) {
	s.trail = append(s.trail, undoEntry{typ: undoAssignment, key: v})
}

// pushClauseSatisfy records that clause ci had its satisfied flag raised.
func (s *Solver) pushClauseSatisfy(ci int) {
	s.trail = append(s.trail, undoEntry{typ: undoClauseSatisfy, clause: ci})
}

// watchAdd appends clause ci to the watch list at idx and logs the effect.
func (s *Solver) watchAdd(idx, ci int) {
	s.watches[idx] = append(s.watches[idx], ci)
	s.trail = append(s.trail, undoEntry{typ: undoWatchAdd, key: idx, clause: ci})
}

// watchRemove removes the first occurrence of clause ci from the watch list
// at idx and logs the effect.
func (s *Solver) watchRemove(idx, ci int) {
	s.removeFirstWatch(idx, ci)
	s.trail = append(s.trail, undoEntry{typ: undoWatchRemove, key: idx, clause: ci})
}

// removeFirstWatch deletes the first occurrence of ci from the list at idx,
// preserving the order of the remaining entries.
func (s *Solver) removeFirstWatch(idx, ci int) {
	list := s.watches[idx]
	for i, c := range list {
		if c == ci {
			s.watches[idx] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// rewindTo pops and inverts trail entries in LIFO order until the trail
// position equals cp. It is purely state-restoring and never re-propagates.
func (s *Solver) rewindTo(cp int) {
	for len(s.trail) > cp {
		e := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]

		switch e.typ {
		case undoAssignment:
			s.assigns[e.key] = tribool.Undef
		case undoClauseSatisfy:
			s.clauses[e.clause].satisfied = false
		case undoWatchAdd:
			s.removeFirstWatch(e.key, e.clause)
		case undoWatchRemove:
			s.watches[e.key] = append(s.watches[e.key], e.clause)
		}
	}
}
