package t2048

import (
	"math/rand"

	"github.com/vovakirdan/twenty48/internal/core"
	"github.com/vovakirdan/twenty48/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "2048"

// DefaultWinTile is the tile value that triggers the win celebration.
const DefaultWinTile = 2048

// Game implements the 2048 puzzle game on top of the pure board engine.
type Game struct {
	rng      *rand.Rand
	tick     uint64
	tickRate int

	board     Board
	winTile   int
	moves     int
	playTicks uint64 // Ticks spent playing, excluding pauses

	// Screen dimensions
	screenW int
	screenH int

	// Tiles created by the last move, for the pop highlight
	fresh      map[int]bool
	freshTicks int

	// Game state flags
	gameOver    bool
	won         bool // Win tile reached at least once
	celebrating bool // Win overlay is showing
	paused      bool
	tooSmall    bool
	blocked     bool // Last move was rejected
}

// New creates a new 2048 game with the default win tile.
func New() *Game {
	return &Game{winTile: DefaultWinTile}
}

var _ registry.Game = (*Game)(nil)

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.winTile = DefaultWinTile
	if cfg.WinTile >= 4 && isTileValue(cfg.WinTile) {
		g.winTile = cfg.WinTile
	}

	g.board = InitBoard()
	g.moves = 0
	g.playTicks = 0
	g.fresh = nil
	g.freshTicks = 0

	g.gameOver = false
	g.won = false
	g.celebrating = false
	g.paused = false
	g.blocked = false

	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (21 wide, 9 tall) + HUD (4 lines)
	minW := 25
	minH := 14
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Board returns the current board snapshot.
func (g *Game) Board() Board {
	return g.board
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.freshTicks > 0 {
		g.freshTicks--
		if g.freshTicks == 0 {
			g.fresh = nil
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform, which calls Reset
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.playTicks++

	dir, ok := directionFromInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	// A move key dismisses the win overlay; play continues
	if g.celebrating {
		g.celebrating = false
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFromInput returns the first move action in the frame.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove applies a move. A direction that cannot spawn is rejected;
// the round ends only when no direction can.
func (g *Game) processMove(dir Direction) bool {
	next, ok := Move(g.board, dir, g.rng)
	if !ok {
		g.blocked = true
		if IsTerminal(g.board) {
			g.gameOver = true
		}
		return false
	}

	g.blocked = false
	g.fresh = freshTiles(g.board, next)
	g.freshTicks = popAnimationDuration
	g.board = next
	g.moves++

	if !g.won && HighestTileValue(g.board) >= g.winTile {
		g.won = true
		g.celebrating = true
	}

	if IsTerminal(g.board) {
		g.gameOver = true
	}
	return true
}

// ElapsedSeconds returns whole seconds of play, excluding pauses.
func (g *Game) ElapsedSeconds() int {
	if g.tickRate <= 0 {
		return 0
	}
	return int(g.playTicks / uint64(g.tickRate))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:          HighestTileValue(g.board),
		ElapsedSeconds: g.ElapsedSeconds(),
		Moves:          g.moves,
		GameOver:       g.gameOver,
		Paused:         g.paused || g.tooSmall,
	}
}
