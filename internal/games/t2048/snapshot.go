package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Board          [Size][Size]int
	MaxTile        int // Highest tile on board
	Moves          int
	ElapsedSeconds int
	WinTile        int
	Won            bool // Win tile reached at some point this round
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.celebrating:
		state = StateWon
	}

	return Snapshot{
		Tick:           g.tick,
		Board:          g.board.Values(),
		MaxTile:        HighestTileValue(g.board),
		Moves:          g.moves,
		ElapsedSeconds: g.ElapsedSeconds(),
		WinTile:        g.winTile,
		Won:            g.won,
		State:          state,
	}
}
