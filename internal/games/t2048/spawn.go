package t2048

import "errors"

// ErrBoardFull is returned when a tile must be spawned and no cell is empty.
var ErrBoardFull = errors.New("t2048: board full")

// FourThreshold is the draw at or above which a spawned tile is a 4.
// With a uniform source this gives 4 one time in ten.
const FourThreshold = 0.9

// Rand is a uniform source of values in [0, 1).
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// PickEmptyCell selects an empty cell uniformly at random using a single
// draw: floor(draw * emptyCount).
func PickEmptyCell(board Board, rnd Rand) (Coord, error) {
	empties := board.EmptyCells()
	if len(empties) == 0 {
		return Coord{}, ErrBoardFull
	}
	i := int(rnd.Float64() * float64(len(empties)))
	// Sources outside [0, 1) pick the nearest end.
	i = min(max(i, 0), len(empties)-1)
	return empties[i], nil
}

// SpawnTile places one new tile on a random empty cell. The cell and the
// value come from two independent draws; the value is 4 when the second
// draw is >= FourThreshold and 2 otherwise.
func SpawnTile(board Board, rnd Rand) (Board, error) {
	cell, err := PickEmptyCell(board, rnd)
	if err != nil {
		return board, err
	}
	value := 2
	if rnd.Float64() >= FourThreshold {
		value = 4
	}
	return board.SetTile(cell.Row, cell.Col, value), nil
}
