package t2048

// popAnimationDuration is how many ticks new tiles stay highlighted.
const popAnimationDuration = 6 // ~100ms at 60fps

// TileMove describes what happened to one tile between two boards.
// Tiles are matched by ID, so a tile that slid keeps its ID while merged
// and spawned tiles appear as new.
type TileMove struct {
	ID       int
	Value    int
	From, To Coord
	IsNew    bool // Created by a merge or a spawn; From is meaningless
}

// Moved reports whether the tile changed position.
func (m TileMove) Moved() bool {
	return !m.IsNew && m.From != m.To
}

// Diff matches the tiles of after against before by identity.
// The result follows after's row-major order. Tiles of before that are
// missing from after were consumed by a merge and are not reported.
func Diff(before, after Board) []TileMove {
	positions := make(map[int]Coord)
	for _, c := range before.Cells() {
		if c.Occupied {
			positions[c.Tile.ID] = Coord{Row: c.Row, Col: c.Col}
		}
	}

	var moves []TileMove
	for _, c := range after.Cells() {
		if !c.Occupied {
			continue
		}
		to := Coord{Row: c.Row, Col: c.Col}
		from, ok := positions[c.Tile.ID]
		moves = append(moves, TileMove{
			ID:    c.Tile.ID,
			Value: c.Tile.Value,
			From:  from,
			To:    to,
			IsNew: !ok,
		})
	}
	return moves
}

// freshTiles returns the IDs of tiles created between before and after.
func freshTiles(before, after Board) map[int]bool {
	fresh := make(map[int]bool)
	for _, m := range Diff(before, after) {
		if m.IsNew {
			fresh[m.ID] = true
		}
	}
	return fresh
}
