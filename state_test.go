package rocket

import "testing"

func mustMoves(t *testing.T, alg string) []Move {
	t.Helper()
	moves, err := ParseMoves(alg)
	if err != nil {
		t.Fatal(err)
	}
	return moves
}

func applyAll(s State, moves []Move) State {
	for _, m := range moves {
		s = s.ApplyMove(m)
	}
	return s
}

func TestState_ZeroValueIsSolved(t *testing.T) {
	var s State
	if !s.IsSolved() {
		t.Error("zero state should be solved")
	}
	if s.LowerBound() != 0 {
		t.Error("solved state should have lower bound 0")
	}
}

func TestState_MoveAndInverseCancel(t *testing.T) {
	for _, alg := range []string{"R R'", "U2 U2", "F' F", "L D L' D'  D D' L L'"} {
		s := applyAll(State{}, mustMoves(t, alg))
		if !s.IsSolved() {
			t.Errorf("%q should reduce to solved, residue %q", alg, s.String())
		}
	}
}

func TestState_CancellationRestoresPriorState(t *testing.T) {
	s := applyAll(State{}, mustMoves(t, "R U2 F'"))
	after := s.ApplyMove(NewMove(AxisX, TurnCW, TurnNone)).
		ApplyMove(NewMove(AxisX, TurnCCW, TurnNone))
	if after != s {
		t.Errorf("applying a move and its inverse changed the state: %q vs %q", after.String(), s.String())
	}
}

func TestState_SameAxisMerges(t *testing.T) {
	s := applyAll(State{}, mustMoves(t, "R L'"))
	if s.Len() != 1 {
		t.Fatalf("R L' should merge to one residue entry, got %d", s.Len())
	}
	// RL' turns both faces: two turns left, not one.
	if s.IsOneFromSolved() {
		t.Error("a both-faces residue entry is not one from solved")
	}
	if s.LowerBound() != 2 {
		t.Errorf("lower bound of RL' residue = %d, want 2", s.LowerBound())
	}
}

func TestState_OneFromSolved(t *testing.T) {
	cases := []struct {
		alg  string
		want bool
	}{
		{"U", true},
		{"U2", true},
		{"R U", false},
		{"R L'", false},
		{"R U U' ", true}, // reduces to R
	}
	for _, c := range cases {
		s := applyAll(State{}, mustMoves(t, c.alg))
		if got := s.IsOneFromSolved(); got != c.want {
			t.Errorf("%q one-from-solved = %v, want %v", c.alg, got, c.want)
		}
	}
}

func TestState_ResidueAlternatesAxes(t *testing.T) {
	s := applyAll(State{}, mustMoves(t, "R U2 R2 U' R2 U' R2 U2 R"))
	if s.Len() != 9 {
		t.Fatalf("alternating-axis input should not reduce, got %d entries", s.Len())
	}
	if s.LowerBound() != 9 {
		t.Errorf("lower bound = %d, want 9 (one turn per single-face entry)", s.LowerBound())
	}
}

func TestState_LowerBoundAdmissible(t *testing.T) {
	// The lower bound must never exceed the number of moves that actually
	// clear the residue: for any applied word, the residue length in
	// physical turns is at most the word length.
	for _, alg := range []string{"R", "R U", "R U F", "R2 L2 U2", "R U R' U'", "R L' U2 R' L", "F B2 L' D"} {
		moves := mustMoves(t, alg)
		s := applyAll(State{}, moves)
		limit := 0
		for _, m := range moves {
			if m.IsDouble() {
				limit += 2
			} else {
				limit++
			}
		}
		if s.LowerBound() > limit {
			t.Errorf("%q: lower bound %d exceeds physical turn count %d of the word itself", alg, s.LowerBound(), limit)
		}
	}
}
