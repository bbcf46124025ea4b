package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/games/dragonmath"
	"github.com/vovakirdan/dragon-math/internal/locale"
	"github.com/vovakirdan/dragon-math/internal/platform/scene"
	"github.com/vovakirdan/dragon-math/internal/storage"
)

// helpRows is the number of terminal rows below the playfield.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one dragon math game.
type Model struct {
	game       *dragonmath.Game
	text       locale.Table
	logger     *log.Logger
	screen     *core.Screen
	view       viewport
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	shotDir    string
	quitting   bool
}

// NewModel creates a Bubble Tea model for the game. A nil logger
// discards notices.
func NewModel(game *dragonmath.Game, text locale.Table, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Config().Timing.TickRate
	}

	m := Model{
		game:       game,
		text:       text,
		logger:     logger,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 0)),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		shotDir:    filepath.Join("~", ".dragonmath", "screenshots"),
	}
	m.view = m.viewportFor(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = cfg.ScreenW
	return m
}

func (m Model) viewportFor(width, height int) viewport {
	pf := m.game.Config().Playfield
	return newViewport(width, height-helpRows, pf.Width, pf.Height)
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues key input for the next tick. Quit is queued as well so
// the game sees it, but the program stops right away.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.game.Step(m.inputFrame)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left click on a cell into a click on the playfield
// point that cell stands for.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.view.rows {
		return m, nil
	}
	px, py := m.view.pointOf(msg.X, msg.Y)
	m.inputFrame.Push(core.Click(px, py))
	return m, nil
}

// handleResize rescales the playfield. The game keeps running since its
// simulation does not depend on the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.view = m.viewportFor(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	scene.LogNotices(m.logger, result.Notices)

	m.inputFrame.Clear()

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir, err := storage.ExpandPath(m.shotDir)
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		if m.logger != nil {
			m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		}
		return
	}
	if m.logger != nil {
		m.logger.Info("screenshot saved", "path", path, "state", m.game.Snapshot())
	}
}

func (m Model) draw() {
	paint(m.screen, m.view, scene.Build(m.game.Frame(), m.text))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game and blocks until the
// player quits.
func Run(game *dragonmath.Game, text locale.Table, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, text, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
