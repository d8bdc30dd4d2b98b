// Package rocket finds the cheapest way to insert whole-puzzle
// reorientations into a fixed 3x3x3 move sequence so that the sequence
// still ends solved (or one turn from solved) after the reorientations are
// accounted for.
//
// The engine works on a compact algebra of face turns (Move), whole-puzzle
// rotations (Orientation, catalogued as the 24 Reorient values), and a
// free-reduction proxy of the puzzle state (State). Search runs an
// iterative-deepening depth-first enumeration of reorientation insertion
// points, pruned by the proxy's admissible lower bound, and returns every
// solution at the minimal reorientation count:
//
//	moves, err := rocket.ParseMoves("R U R' U'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := rocket.Search(moves, rocket.WithMaxDepth(5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, sol := range res.Solutions {
//	    fmt.Println(rocket.FormatSolution(moves, sol, false))
//	}
//
// Reorientations carry a physical execution cost; Result.MinCost filters
// the minimal-count solutions down to the cheapest ones, with individual
// costs overridable through a CheapSet.
package rocket
