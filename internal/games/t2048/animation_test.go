package t2048

import "testing"

func TestDiffSlide(t *testing.T) {
	before := singleRow([Size]int{0, 0, 2, 0})
	after := SlideLeft(before)

	moves := Diff(before, after)
	if len(moves) != 1 {
		t.Fatalf("Diff returned %d moves, want 1", len(moves))
	}

	m := moves[0]
	if m.IsNew {
		t.Error("slid tile should not be new")
	}
	if !m.Moved() {
		t.Error("slid tile should report Moved")
	}
	if m.From != (Coord{0, 2}) || m.To != (Coord{0, 0}) {
		t.Errorf("move = %v -> %v, want (0,2) -> (0,0)", m.From, m.To)
	}
}

func TestDiffMerge(t *testing.T) {
	before := singleRow([Size]int{2, 2, 4, 0})
	after := SlideLeft(before)

	moves := Diff(before, after)
	if len(moves) != 2 {
		t.Fatalf("Diff returned %d moves, want 2", len(moves))
	}

	if !moves[0].IsNew || moves[0].Value != 4 {
		t.Errorf("moves[0] = %+v, want new 4", moves[0])
	}
	if moves[1].IsNew || moves[1].Value != 4 || moves[1].From != (Coord{0, 2}) {
		t.Errorf("moves[1] = %+v, want 4 slid from (0,2)", moves[1])
	}

	fresh := freshTiles(before, after)
	if len(fresh) != 1 || !fresh[moves[0].ID] {
		t.Errorf("freshTiles = %v, want only %d", fresh, moves[0].ID)
	}
}

func TestDiffUnchanged(t *testing.T) {
	board := InitBoard()
	for _, m := range Diff(board, board) {
		if m.IsNew || m.Moved() {
			t.Errorf("unchanged board reported %+v", m)
		}
	}
	if fresh := freshTiles(board, board); len(fresh) != 0 {
		t.Errorf("freshTiles = %v, want empty", fresh)
	}
}
