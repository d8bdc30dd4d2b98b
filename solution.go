package rocket

import (
	"fmt"
	"strings"
)

// MaxReorients bounds how many non-null reorientations one solution may
// hold. Search depth is validated against this before a search starts.
const MaxReorients = 7

// placement records one reorientation inserted after the move at index.
type placement struct {
	index    uint8
	reorient Reorient
}

// Record is a sparse, bounded list of the reorientation insertions chosen
// along one search path. The zero value is the empty record. Records are
// small value types copied freely through the search.
type Record struct {
	n       uint8
	entries [MaxReorients]placement
}

// Push appends a reorientation inserted after the move at index. Pushing
// the null reorientation is a no-op. Exceeding the capacity is a
// programming error (the search validates its depth bound first) and
// panics.
func (r Record) Push(index int, re Reorient) Record {
	if re == ReorientNone {
		return r
	}
	if int(r.n) == MaxReorients {
		panic(fmt.Sprintf("rocket: solution record overflow (more than %d reorientations)", MaxReorients))
	}
	r.entries[r.n] = placement{index: uint8(index), reorient: re}
	r.n++
	return r
}

// Len returns the number of recorded reorientations.
func (r Record) Len() int {
	return int(r.n)
}

// Cost returns the total physical cost of the recorded reorientations.
func (r Record) Cost(cheap CheapSet) int {
	total := 0
	for _, e := range r.entries[:r.n] {
		total += e.reorient.Cost(cheap)
	}
	return total
}

// Expand produces a dense per-position sequence of length moveCount:
// entry i is the reorientation inserted after move i, ReorientNone where
// nothing was inserted.
func (r Record) Expand(moveCount int) []Reorient {
	dense := make([]Reorient, moveCount)
	for _, e := range r.entries[:r.n] {
		dense[e.index] = e.reorient
	}
	return dense
}

// FormatSolution renders the original moves interleaved with the record's
// reorientation symbols in sequence order, using the selected display
// notation.
func FormatSolution(moves []Move, rec Record, sticker bool) string {
	if len(moves) == 0 {
		return ""
	}
	dense := rec.Expand(len(moves))
	var b strings.Builder
	b.WriteString(moves[0].String())
	for i := 1; i < len(moves); i++ {
		if re := dense[i-1]; re != ReorientNone {
			b.WriteByte(' ')
			b.WriteString(re.Symbol(sticker))
		}
		b.WriteByte(' ')
		b.WriteString(moves[i].String())
	}
	return b.String()
}
