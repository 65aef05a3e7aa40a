package t2048

import (
	"math/rand"
	"testing"
)

// seqRand returns a fixed sequence of draws, cycling when exhausted.
type seqRand struct {
	draws []float64
	i     int
}

func (r *seqRand) Float64() float64 {
	v := r.draws[r.i%len(r.draws)]
	r.i++
	return v
}

// singleRow builds a board whose first row holds vals.
func singleRow(vals [Size]int) Board {
	return NewBoard([Size][Size]int{vals})
}

func TestSlideRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
	}{
		{
			name:     "simple merge",
			input:    [Size]int{2, 2, 0, 0},
			expected: [Size]int{4, 0, 0, 0},
		},
		{
			name:     "merge with trailing",
			input:    [Size]int{2, 2, 2, 0},
			expected: [Size]int{4, 2, 0, 0},
		},
		{
			name:     "double merge",
			input:    [Size]int{2, 2, 2, 2},
			expected: [Size]int{4, 4, 0, 0},
		},
		{
			name:     "no merge different values",
			input:    [Size]int{2, 4, 8, 16},
			expected: [Size]int{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    [Size]int{0, 0, 0, 2},
			expected: [Size]int{2, 0, 0, 0},
		},
		{
			name:     "merge across gap",
			input:    [Size]int{2, 0, 0, 2},
			expected: [Size]int{4, 0, 0, 0},
		},
		{
			name:     "slide multiple with gaps",
			input:    [Size]int{0, 2, 0, 4},
			expected: [Size]int{2, 4, 0, 0},
		},
		{
			name:     "pairs of different values",
			input:    [Size]int{2, 2, 4, 4},
			expected: [Size]int{4, 8, 0, 0},
		},
		{
			name:     "merged tile does not merge again",
			input:    [Size]int{4, 4, 8, 0},
			expected: [Size]int{8, 8, 0, 0},
		},
		{
			name:     "empty row",
			input:    [Size]int{0, 0, 0, 0},
			expected: [Size]int{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    [Size]int{4, 0, 0, 0},
			expected: [Size]int{4, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlideLeft(singleRow(tt.input)).Values()[0]
			if got != tt.expected {
				t.Errorf("SlideLeft(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlideRowRight(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
	}{
		{
			name:     "merge across gap at the edge",
			input:    [Size]int{2, 0, 2, 2},
			expected: [Size]int{0, 0, 2, 4},
		},
		{
			name:     "rightmost pair merges first",
			input:    [Size]int{2, 2, 2, 0},
			expected: [Size]int{0, 0, 2, 4},
		},
		{
			name:     "double merge",
			input:    [Size]int{2, 2, 2, 2},
			expected: [Size]int{0, 0, 4, 4},
		},
		{
			name:     "merge far apart",
			input:    [Size]int{4, 0, 0, 4},
			expected: [Size]int{0, 0, 0, 8},
		},
		{
			name:     "merged tile does not merge again",
			input:    [Size]int{0, 8, 4, 4},
			expected: [Size]int{0, 0, 8, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlideRight(singleRow(tt.input)).Values()[0]
			if got != tt.expected {
				t.Errorf("SlideRight(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlideBoards(t *testing.T) {
	board := NewBoard([Size][Size]int{
		{2, 0, 2, 0},
		{0, 4, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 8},
	})

	tests := []struct {
		dir      Direction
		expected [Size][Size]int
	}{
		{
			dir: DirLeft,
			expected: [Size][Size]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{8, 0, 0, 0},
			},
		},
		{
			dir: DirRight,
			expected: [Size][Size]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 8},
			},
		},
		{
			dir: DirUp,
			expected: [Size][Size]int{
				{4, 4, 2, 2},
				{0, 2, 4, 8},
				{0, 0, 2, 0},
				{0, 0, 0, 0},
			},
		},
		{
			dir: DirDown,
			expected: [Size][Size]int{
				{0, 0, 0, 0},
				{0, 0, 2, 0},
				{0, 4, 4, 2},
				{4, 2, 2, 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got, changed := Slide(board, tt.dir)
			if !changed {
				t.Errorf("Slide(%v) reported no change", tt.dir)
			}
			if got.Values() != tt.expected {
				t.Errorf("Slide(%v) =\n%v\nwant\n%v", tt.dir, got, NewBoard(tt.expected))
			}
		})
	}
}

func TestSlideNoChange(t *testing.T) {
	board := NewBoard([Size][Size]int{
		{2, 4, 8, 16},
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if _, changed := Slide(board, DirLeft); changed {
		t.Error("Slide(left) should not change a left-packed board")
	}
	if _, changed := Slide(board, DirUp); changed {
		t.Error("Slide(up) should not change a top-packed board")
	}
	if _, changed := Slide(board, DirRight); !changed {
		t.Error("Slide(right) should move the second row")
	}
}

func TestVerticalSlidesMatchTranspose(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		board := randomBoard(rng)

		up := SlideLeft(board.Transpose()).Transpose()
		if got := SlideUp(board); got.Values() != up.Values() {
			t.Fatalf("SlideUp mismatch on\n%v", board)
		}

		down := SlideRight(board.Transpose()).Transpose()
		if got := SlideDown(board); got.Values() != down.Values() {
			t.Fatalf("SlideDown mismatch on\n%v", board)
		}
	}
}

func TestSlideConservesValue(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		board := randomBoard(rng)
		for _, dir := range Directions {
			got, _ := Slide(board, dir)
			if got.Sum() != board.Sum() {
				t.Fatalf("Slide(%v) sum = %d, want %d on\n%v", dir, got.Sum(), board.Sum(), board)
			}
		}
	}
}

func TestMoveAddsOneSpawnedTile(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		board := randomBoard(rng)
		for _, dir := range Directions {
			slid, _ := Slide(board, dir)
			got, ok := Move(board, dir, rng)
			if !ok {
				if len(slid.EmptyCells()) != 0 {
					t.Fatalf("Move(%v) failed with empty cells on\n%v", dir, board)
				}
				continue
			}
			if got.TileCount() != slid.TileCount()+1 {
				t.Fatalf("Move(%v) tile count = %d, want %d", dir, got.TileCount(), slid.TileCount()+1)
			}
			if diff := got.Sum() - board.Sum(); diff != 2 && diff != 4 {
				t.Fatalf("Move(%v) added %d, want 2 or 4", dir, diff)
			}
		}
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	board := NewBoard([Size][Size]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := board

	Move(board, DirLeft, &seqRand{draws: []float64{0}})
	SlideRight(board)

	if board != before {
		t.Error("Move modified its input board")
	}
}

func TestMoveScenarios(t *testing.T) {
	tests := []struct {
		name     string
		board    [Size][Size]int
		dir      Direction
		draws    []float64
		expected [Size][Size]int
	}{
		{
			name:  "merge left then spawn 2 in first empty cell",
			board: [Size][Size]int{{2, 2, 0, 0}},
			dir:   DirLeft,
			draws: []float64{0, 0},
			expected: [Size][Size]int{
				{4, 2, 0, 0},
			},
		},
		{
			name:  "merge right then spawn 4 in last empty cell",
			board: [Size][Size]int{{2, 0, 2, 2}},
			dir:   DirRight,
			draws: []float64{0.99, 0.95},
			expected: [Size][Size]int{
				{0, 0, 2, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 4},
			},
		},
		{
			name:  "no-op slide still spawns",
			board: [Size][Size]int{{2, 4, 0, 0}},
			dir:   DirLeft,
			draws: []float64{0, 0.5},
			expected: [Size][Size]int{
				{2, 4, 2, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Move(NewBoard(tt.board), tt.dir, &seqRand{draws: tt.draws})
			if !ok {
				t.Fatal("Move failed")
			}
			if got.Values() != tt.expected {
				t.Errorf("Move =\n%v\nwant\n%v", got, NewBoard(tt.expected))
			}
		})
	}
}

func TestMoveFullBoardNoMerges(t *testing.T) {
	board := NewBoard([Size][Size]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	for _, dir := range Directions {
		got, ok := Move(board, dir, &seqRand{draws: []float64{0.5}})
		if ok {
			t.Errorf("Move(%v) succeeded on a terminal board", dir)
		}
		if got != (Board{}) {
			t.Errorf("Move(%v) failure should return the zero board", dir)
		}
	}

	if !IsTerminal(board) {
		t.Error("IsTerminal should be true")
	}
}

func TestMoveFullBoardHorizontalMergeOnly(t *testing.T) {
	board := NewBoard([Size][Size]int{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	})
	rnd := &seqRand{draws: []float64{0, 0}}

	left, ok := Move(board, DirLeft, rnd)
	if !ok {
		t.Fatal("Move(left) should merge and spawn")
	}
	if got := left.Values()[0]; got != [Size]int{4, 8, 16, 2} {
		t.Errorf("Move(left) first row = %v, want [4 8 16 2]", got)
	}

	right, ok := Move(board, DirRight, rnd)
	if !ok {
		t.Fatal("Move(right) should merge and spawn")
	}
	if got := right.Values()[0]; got != [Size]int{2, 4, 8, 16} {
		t.Errorf("Move(right) first row = %v, want [2 4 8 16]", got)
	}

	for _, dir := range []Direction{DirUp, DirDown} {
		if _, ok := Move(board, dir, rnd); ok {
			t.Errorf("Move(%v) should report no room to spawn", dir)
		}
	}

	if IsTerminal(board) {
		t.Error("board with a horizontal merge is not terminal")
	}
}

func TestMergeCreatesNewIdentity(t *testing.T) {
	board := singleRow([Size]int{2, 2, 0, 0})
	a, _ := board.Tile(0, 0)
	b, _ := board.Tile(0, 1)

	merged, _ := SlideLeft(board).Tile(0, 0)
	if merged.ID == a.ID || merged.ID == b.ID {
		t.Errorf("merged tile reused ID %d", merged.ID)
	}
	if merged.Value != 4 {
		t.Errorf("merged value = %d, want 4", merged.Value)
	}

	slid := singleRow([Size]int{0, 0, 0, 8})
	orig, _ := slid.Tile(0, 3)
	moved, _ := SlideLeft(slid).Tile(0, 0)
	if moved != orig {
		t.Errorf("slid tile = %+v, want %+v", moved, orig)
	}
}

func TestIDsUniqueAcrossMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	board := InitBoard()
	seen := map[int]bool{}

	for i := 0; i < 200; i++ {
		next, ok := Move(board, Directions[rng.Intn(len(Directions))], rng)
		if !ok {
			if IsTerminal(board) {
				break
			}
			continue
		}
		ids := map[int]bool{}
		for _, c := range next.Cells() {
			if !c.Occupied {
				continue
			}
			if ids[c.Tile.ID] {
				t.Fatalf("duplicate ID %d on board\n%v", c.Tile.ID, next)
			}
			ids[c.Tile.ID] = true
		}
		for _, m := range Diff(board, next) {
			if m.IsNew && seen[m.ID] {
				t.Fatalf("new tile reused retired ID %d", m.ID)
			}
			seen[m.ID] = true
		}
		board = next
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    [Size][Size]int
		terminal bool
	}{
		{
			name: "empty cells available",
			board: [Size][Size]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 0},
				{4, 8, 16, 32},
			},
			terminal: false,
		},
		{
			name: "horizontal merge possible",
			board: [Size][Size]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4},
				{8, 16, 32, 64},
			},
			terminal: false,
		},
		{
			name: "vertical merge possible",
			board: [Size][Size]int{
				{2, 4, 8, 16},
				{2, 64, 128, 256},
				{512, 1024, 2048, 4},
				{8, 16, 32, 64},
			},
			terminal: false,
		},
		{
			name: "no moves possible",
			board: [Size][Size]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			terminal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(tt.board)
			if got := IsTerminal(board); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
			if got := CanMove(board); got == tt.terminal {
				t.Errorf("CanMove() = %v, want %v", got, !tt.terminal)
			}
		})
	}
}

// randomBoard fills about half the cells with small tiles.
func randomBoard(rng *rand.Rand) Board {
	var vals [Size][Size]int
	for y := range Size {
		for x := range Size {
			if rng.Intn(2) == 0 {
				vals[y][x] = 1 << (1 + rng.Intn(4))
			}
		}
	}
	return NewBoard(vals)
}
