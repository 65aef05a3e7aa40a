package t2048

import (
	"strconv"
	"strings"
)

// Size is the board dimension. The board is always Size x Size.
const Size = 4

// StartValue is the value of the tile placed by InitBoard.
const StartValue = 2

// Tile is a numbered tile on the board.
// ID is a stable identity: it survives sliding and is replaced when two
// tiles merge into a new one. A zero Value means no tile.
type Tile struct {
	ID    int
	Value int
}

// Coord is a (row, column) position on the board.
type Coord struct {
	Row, Col int
}

// Cell is one board position with its tile, if any.
type Cell struct {
	Row      int
	Col      int
	Tile     Tile
	Occupied bool
}

// Board is an immutable 4x4 snapshot. Every operation returns a new Board.
// The tile identity counter travels with the board, so boards derived from
// the same InitBoard call never reuse an ID.
type Board struct {
	cells  [Size][Size]Tile
	nextID int
}

// InitBoard returns the starting board: a single 2 at (1, 1).
// The identity counter starts over, so the first tile always has ID 1.
func InitBoard() Board {
	return Board{}.SetTile(1, 1, StartValue)
}

// NewBoard builds a board from raw values (0 = empty).
// Tiles get IDs in row-major order. Invalid values are skipped.
func NewBoard(values [Size][Size]int) Board {
	var b Board
	for row := range Size {
		for col := range Size {
			b = b.SetTile(row, col, values[row][col])
		}
	}
	return b
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsEmpty reports whether no tile occupies (row, col).
// Out-of-range coordinates are empty.
func (b Board) IsEmpty(row, col int) bool {
	if !inBounds(row, col) {
		return true
	}
	return b.cells[row][col].Value == 0
}

// Tile returns the tile at (row, col). The bool is false when the cell is
// empty or out of range.
func (b Board) Tile(row, col int) (Tile, bool) {
	if b.IsEmpty(row, col) {
		return Tile{}, false
	}
	return b.cells[row][col], true
}

// SetTile returns a copy of the board holding a freshly created tile of the
// given value at (row, col). Absent values (<= 0), values that are not powers
// of two and out-of-range coordinates leave the board unchanged.
func (b Board) SetTile(row, col, value int) Board {
	if !inBounds(row, col) || !isTileValue(value) {
		return b
	}
	b.cells[row][col] = b.newTile(value)
	return b
}

// newTile allocates the next identity on b.
func (b *Board) newTile(value int) Tile {
	b.nextID++
	return Tile{ID: b.nextID, Value: value}
}

func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// Cells returns every position in row-major order: all columns of row 0,
// then row 1, and so on. Each call returns a new slice.
func (b Board) Cells() []Cell {
	cells := make([]Cell, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			t := b.cells[row][col]
			cells = append(cells, Cell{Row: row, Col: col, Tile: t, Occupied: t.Value != 0})
		}
	}
	return cells
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Coord {
	var empties []Coord
	for _, c := range b.Cells() {
		if !c.Occupied {
			empties = append(empties, Coord{Row: c.Row, Col: c.Col})
		}
	}
	return empties
}

// TileCount returns the number of occupied cells.
func (b Board) TileCount() int {
	n := 0
	for _, c := range b.Cells() {
		if c.Occupied {
			n++
		}
	}
	return n
}

// Transpose swaps rows and columns. Tile identities are preserved.
func (b Board) Transpose() Board {
	out := Board{nextID: b.nextID}
	for _, c := range b.Cells() {
		if c.Occupied {
			out.cells[c.Col][c.Row] = c.Tile
		}
	}
	return out
}

// Values returns the tile values as a plain grid (0 = empty).
func (b Board) Values() [Size][Size]int {
	var v [Size][Size]int
	for _, c := range b.Cells() {
		v[c.Row][c.Col] = c.Tile.Value
	}
	return v
}

// Sum returns the total value of all tiles.
func (b Board) Sum() int {
	total := 0
	for _, c := range b.Cells() {
		total += c.Tile.Value
	}
	return total
}

// HighestTileValue returns the largest tile value, or 0 for an empty board.
func HighestTileValue(b Board) int {
	highest := 0
	for _, c := range b.Cells() {
		if c.Tile.Value > highest {
			highest = c.Tile.Value
		}
	}
	return highest
}

// String renders the board as plain text, one bracketed cell per tile.
func (b Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range Size {
			t, ok := b.Tile(row, col)
			if !ok {
				sb.WriteString("[    ]")
				continue
			}
			sb.WriteString("[" + padLeft(strconv.Itoa(t.Value), 4) + "]")
		}
	}
	return sb.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
