package rocket

import "testing"

func TestRecord_PushIgnoresNull(t *testing.T) {
	var rec Record
	rec = rec.Push(0, ReorientNone)
	if rec.Len() != 0 {
		t.Error("pushing the null reorientation should be a no-op")
	}
	rec = rec.Push(3, ReorientUR)
	if rec.Len() != 1 {
		t.Errorf("Len = %d, want 1", rec.Len())
	}
}

func TestRecord_Expand(t *testing.T) {
	var rec Record
	rec = rec.Push(1, ReorientF)
	rec = rec.Push(4, ReorientUFR)
	dense := rec.Expand(6)
	want := []Reorient{ReorientNone, ReorientF, ReorientNone, ReorientNone, ReorientUFR, ReorientNone}
	for i := range want {
		if dense[i] != want[i] {
			t.Errorf("dense[%d] = %v, want %v", i, dense[i], want[i])
		}
	}
}

func TestRecord_Cost(t *testing.T) {
	var rec Record
	rec = rec.Push(0, ReorientR)   // 1
	rec = rec.Push(1, ReorientUF)  // 3
	rec = rec.Push(2, ReorientUFR) // 2
	if got := rec.Cost(0); got != 6 {
		t.Errorf("Cost = %d, want 6", got)
	}
	cheap := CheapSet(0).Add(ReorientUF)
	if got := rec.Cost(cheap); got != 4 {
		t.Errorf("Cost with cheap xy2 = %d, want 4", got)
	}
}

func TestRecord_OverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("exceeding the record capacity should panic")
		}
	}()
	var rec Record
	for i := 0; i <= MaxReorients; i++ {
		rec = rec.Push(i, ReorientR)
	}
}

func TestFormatSolution(t *testing.T) {
	moves := mustMoves(t, "R U R' U'")
	var rec Record
	rec = rec.Push(1, ReorientUR)
	if got := FormatSolution(moves, rec, false); got != "R U Ozx2 R' U'" {
		t.Errorf("axis notation = %q", got)
	}
	if got := FormatSolution(moves, rec, true); got != "R U 23I:UR R' U'" {
		t.Errorf("sticker notation = %q", got)
	}
	if got := FormatSolution(moves, Record{}, false); got != "R U R' U'" {
		t.Errorf("empty record = %q", got)
	}
}
