package rocket

import "strings"

// StateCapacity bounds the number of uncancelled moves a State can hold,
// and therefore the longest input sequence a search accepts.
const StateCapacity = 31

// State is a cheap proxy for "distance from solved": the residue of the
// moves applied so far after free reduction. Consecutive moves on the same
// axis are composed; a composition that cancels to identity drops the
// entry. Entries therefore alternate axes. This is not the true puzzle
// permutation, only an order-sensitive reduction of the move word.
//
// The zero value is the solved state. All methods are value transforms.
type State struct {
	moves [StateCapacity]Move
	n     uint8
}

// ApplyMove folds one move into the state: merged with the last entry when
// the axes match (dropping it if they cancel), appended otherwise.
func (s State) ApplyMove(m Move) State {
	if s.n > 0 && s.moves[s.n-1].Axis() == m.Axis() {
		merged := s.moves[s.n-1].Add(m)
		if merged.IsIdentity() {
			s.n--
		} else {
			s.moves[s.n-1] = merged
		}
		return s
	}
	s.moves[s.n] = m
	s.n++
	return s
}

// IsSolved reports whether the residue is empty.
func (s State) IsSolved() bool {
	return s.n == 0
}

// IsOneFromSolved reports whether a single physical turn reaches solved:
// exactly one residue entry that turns only one face.
func (s State) IsOneFromSolved() bool {
	return s.n == 1 && !s.moves[0].IsDouble()
}

// LowerBound returns an admissible lower bound on the physical turns still
// needed to reach solved: each residue entry needs at least one turn, two
// if it turns both opposite faces.
func (s State) LowerBound() int {
	bound := 0
	for _, m := range s.moves[:s.n] {
		if m.IsDouble() {
			bound += 2
		} else {
			bound++
		}
	}
	return bound
}

// Len returns the number of residue entries.
func (s State) Len() int {
	return int(s.n)
}

// String renders the residue as space-separated move notation.
func (s State) String() string {
	parts := make([]string, s.n)
	for i, m := range s.moves[:s.n] {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
