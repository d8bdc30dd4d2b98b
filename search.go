package rocket

import "fmt"

// Result holds the outcome of one search invocation: every solution found
// at the first (and therefore minimal) successful reorientation budget.
type Result struct {
	Moves     []Move
	Found     bool
	Reorients int      // reorientation count shared by all solutions
	Solutions []Record // all solutions at the minimal count
}

// TotalTurns returns the STM metric: input moves plus inserted
// reorientations.
func (r *Result) TotalTurns() int {
	return len(r.Moves) + r.Reorients
}

// MinCost returns the minimal total reorientation cost among the solutions
// and the subset achieving it.
func (r *Result) MinCost(cheap CheapSet) (int, []Record) {
	if len(r.Solutions) == 0 {
		return 0, nil
	}
	min := r.Solutions[0].Cost(cheap)
	for _, s := range r.Solutions[1:] {
		if c := s.Cost(cheap); c < min {
			min = c
		}
	}
	var best []Record
	for _, s := range r.Solutions {
		if s.Cost(cheap) == min {
			best = append(best, s)
		}
	}
	return min, best
}

// Search finds the cheapest ways to insert whole-puzzle reorientations into
// the move sequence so that the sequence still ends solved, or one physical
// turn from solved, under the free-reduction state proxy.
//
// It deepens the reorientation budget from zero and stops at the first
// budget producing solutions, so every returned solution uses the minimum
// possible number of reorientations. Secondary cost filtering is left to
// the caller via Result.MinCost.
func Search(moves []Move, opts ...Option) (*Result, error) {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(len(moves)); err != nil {
		return nil, err
	}

	// A sequence of one move (or none) is trivially solvable as-is.
	if len(moves) <= 1 {
		return &Result{Moves: moves, Found: true, Solutions: []Record{{}}}, nil
	}

	limit := min(len(moves)-1, cfg.maxDepth)
	for budget := 0; budget <= limit; budget++ {
		cfg.progress(fmt.Sprintf("Searching solutions with %d reorients", budget))
		var found []Record
		dfs(State{}, OrientationIdentity, moves, Record{}, 0, budget, &found)
		if len(found) > 0 {
			return &Result{Moves: moves, Found: true, Reorients: budget, Solutions: found}, nil
		}
	}
	return &Result{Moves: moves}, nil
}

// dfs explores reorientation insertion points. state carries the residue of
// the moves consumed so far, orient the accumulated reorientation frame,
// and partial the insertions chosen along this path. pos is the index of
// moves[0] in the original sequence.
func dfs(state State, orient Orientation, moves []Move, partial Record, pos, budget int, found *[]Record) {
	if len(moves) <= 1 || budget == 0 {
		// No further branching possible; fold the tail and test.
		for _, m := range moves {
			state = state.ApplyMove(orient.TransformMove(m))
		}
		if state.IsSolved() || state.IsOneFromSolved() {
			*found = append(*found, partial)
		}
		return
	}

	// The +1 slack matches the one-from-solved acceptance.
	if state.LowerBound() > len(moves)+1 {
		return
	}

	next := state.ApplyMove(orient.TransformMove(moves[0]))
	for r := ReorientNone; r < reorientCount; r++ {
		rest := budget
		if !r.IsNone() {
			rest--
		}
		dfs(next, r.Orientation().Transform(orient), moves[1:], partial.Push(pos, r), pos+1, rest, found)
	}
}
