package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/core"
	"github.com/vovakirdan/twenty48/internal/games/t2048"
	"github.com/vovakirdan/twenty48/internal/registry"
	"github.com/vovakirdan/twenty48/internal/storage"
)

// statusStyle renders the line below the game screen.
var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game Model.
type Options struct {
	Store  *storage.Store // May be nil; the game runs without persistence
	Config config.Config
	Logger *log.Logger
	Player string // Recorded with each round; empty for local play
}

// Model is the Bubble Tea model that runs one game and records its results.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig
	hsKey   string
	player  string
	input   core.InputFrame
	state   core.GameState
	best    *storage.HighScore
	roundID uuid.UUID

	roundSaved bool // Current round already recorded
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom terminal line is reserved for the status bar.
func NewModel(game registry.Game, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.ScreenH = max(rt.ScreenH-1, 0)

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:   opts.Store,
		logger:  logger,
		keys:    NewKeyMap(opts.Config.Keys),
		help:    help.New(),
		config:  rt,
		hsKey:   opts.Config.Storage.HighScoreKey,
		player:  opts.Player,
		input:   core.NewInputFrame(),
		roundID: uuid.New(),
	}
	m.best = m.loadBest()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.recordRound(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleResize keeps the current board and only adapts the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-1, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) {
		m.restart()
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.input)
	m.state = result.State

	if result.Moved {
		m.updateHighScore()
	}

	// Record the round on game over (once)
	if m.state.GameOver && !m.roundSaved {
		m.updateHighScore()
		m.recordRound(storage.EndGameOver)
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart records the unfinished round and starts a new one.
func (m *Model) restart() {
	m.recordRound(storage.EndRestart)
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.roundID = uuid.New()
	m.roundSaved = false
}

// updateHighScore stores the current result if it beats the best record.
func (m *Model) updateHighScore() {
	if m.state.Score == 0 || (m.best != nil && m.state.Score <= m.best.HighestTile) {
		return
	}

	hs := storage.HighScore{HighestTile: m.state.Score, ElapsedSeconds: m.state.ElapsedSeconds}
	if m.store != nil {
		if _, err := m.store.SaveHighScore(m.hsKey, hs); err != nil {
			m.logger.Warn("could not save high score", "error", err)
		}
	}
	m.best = &hs
}

// recordRound saves the current round to the history. Rounds without a
// single move are not recorded.
func (m *Model) recordRound(reason storage.EndReason) {
	if m.roundSaved || m.state.Moves == 0 {
		return
	}
	m.roundSaved = true

	if m.store == nil {
		return
	}

	_, err := m.store.SaveRound(storage.Round{
		RoundID:        m.roundID,
		GameID:         m.game.ID(),
		Player:         m.player,
		HighestTile:    m.state.Score,
		ElapsedSeconds: m.state.ElapsedSeconds,
		Moves:          m.state.Moves,
		EndReason:      reason,
	})
	if err != nil {
		m.logger.Warn("could not save round", "round", m.roundID, "error", err)
		return
	}
	m.logger.Debug("round saved", "round", m.roundID, "reason", reason, "tile", m.state.Score)
}

func (m Model) loadBest() *storage.HighScore {
	if m.store == nil {
		return nil
	}
	hs, err := m.store.HighScore(m.hsKey)
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return nil
	}
	return hs
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".twenty48", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// statusLine shows the best record and the key help.
func (m Model) statusLine() string {
	best := "Best: -"
	if m.best != nil {
		best = fmt.Sprintf("Best: %d in %s", m.best.HighestTile, t2048.FormatDuration(m.best.ElapsedSeconds))
	}
	return statusStyle.Render(best+"  ") + m.help.View(m.keys)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(game, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
