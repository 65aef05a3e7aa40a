package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four move directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

type row [Size]Tile

// compressLeft packs tiles against the left edge, keeping their order.
func compressLeft(r row) row {
	var out row
	n := 0
	for _, t := range r {
		if t.Value != 0 {
			out[n] = t
			n++
		}
	}
	return out
}

// compressRight packs tiles against the right edge, keeping their order.
func compressRight(r row) row {
	var out row
	n := Size - 1
	for i := Size - 1; i >= 0; i-- {
		if r[i].Value != 0 {
			out[n] = r[i]
			n--
		}
	}
	return out
}

// mergeLeft scans left to right. Equal neighbours become one new tile of
// double value at the right member's position; the left member is removed.
// The merged tile is skipped so it cannot merge again in the same pass.
func (b *Board) mergeLeft(r row) row {
	for i := 0; i < Size-1; i++ {
		if r[i].Value == 0 || r[i].Value != r[i+1].Value {
			continue
		}
		r[i+1] = b.newTile(r[i].Value * 2)
		r[i] = Tile{}
		i++
	}
	return r
}

// mergeRight mirrors mergeLeft: scans right to left and keeps the merged
// tile at the left member's position.
func (b *Board) mergeRight(r row) row {
	for i := Size - 1; i > 0; i-- {
		if r[i].Value == 0 || r[i].Value != r[i-1].Value {
			continue
		}
		r[i-1] = b.newTile(r[i].Value * 2)
		r[i] = Tile{}
		i--
	}
	return r
}

// slideRows runs compress, merge, compress on every row.
func slideRows(board Board, left bool) Board {
	out := board
	for y := range Size {
		r := row(board.cells[y])
		if left {
			r = compressLeft(out.mergeLeft(compressLeft(r)))
		} else {
			r = compressRight(out.mergeRight(compressRight(r)))
		}
		out.cells[y] = r
	}
	return out
}

// SlideLeft slides all tiles left and merges.
func SlideLeft(board Board) Board {
	return slideRows(board, true)
}

// SlideRight slides all tiles right and merges.
func SlideRight(board Board) Board {
	return slideRows(board, false)
}

// SlideUp slides all tiles up and merges.
func SlideUp(board Board) Board {
	// Transpose, slide left, transpose back
	return SlideLeft(board.Transpose()).Transpose()
}

// SlideDown slides all tiles down and merges.
func SlideDown(board Board) Board {
	// Transpose, slide right, transpose back
	return SlideRight(board.Transpose()).Transpose()
}

// Slide performs the slide-and-merge step in the given direction without
// spawning. Returns the new board and whether any tile moved or merged.
func Slide(board Board, dir Direction) (Board, bool) {
	var next Board
	switch dir {
	case DirLeft:
		next = SlideLeft(board)
	case DirRight:
		next = SlideRight(board)
	case DirUp:
		next = SlideUp(board)
	case DirDown:
		next = SlideDown(board)
	default:
		return board, false
	}
	return next, next.Values() != board.Values()
}

// Move slides the board in dir and spawns exactly one new tile.
// The second result is false when the board has no empty cell left after
// the slide: that is the terminal signal for this direction, and the
// returned board is the zero Board.
//
// A slide that changes nothing on a board with free cells still spawns.
func Move(board Board, dir Direction, rnd Rand) (Board, bool) {
	slid, _ := Slide(board, dir)
	next, err := SpawnTile(slid, rnd)
	if err != nil {
		return Board{}, false
	}
	return next, true
}

// HasPossibleMerge returns true if any adjacent tiles share a value.
func HasPossibleMerge(board Board) bool {
	for y := range Size {
		for x := range Size {
			val := board.cells[y][x].Value
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < Size-1 && board.cells[y][x+1].Value == val {
				return true
			}
			// Check bottom neighbor
			if y < Size-1 && board.cells[y+1][x].Value == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any direction can still slide or merge.
func CanMove(board Board) bool {
	return len(board.EmptyCells()) > 0 || HasPossibleMerge(board)
}

// IsTerminal returns true if Move fails in every direction: the board is
// full and no two adjacent tiles are equal.
func IsTerminal(board Board) bool {
	return !CanMove(board)
}
