package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Options configures the platform around the game.
type Options struct {
	Theme     Theme
	Logger    *log.Logger
	QueueSize int
}

// Model is the Bubble Tea model running one 2048 session.
type Model struct {
	game    *t2048.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	queue   *core.InputQueue
	keys    KeyMap
	help    help.Model
	theme   Theme
	logger  *log.Logger
	session string

	// Menu screens; the game is paused while one is shown.
	mode     screenMode
	menu     menuList
	settings menuList

	lastState core.State
	quitting  bool
}

// NewModel creates a model and starts a fresh game.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Theme.Palette == nil {
		opts.Theme = ClassicTheme()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = core.DefaultQueueSize
	}

	session := uuid.NewString()

	h := help.New()
	h.ShowAll = false
	h.Styles.ShortKey = opts.Theme.HelpKey
	h.Styles.ShortDesc = opts.Theme.HelpDesc
	h.Styles.ShortSeparator = opts.Theme.HelpSeparator
	h.Styles.FullKey = opts.Theme.HelpKey
	h.Styles.FullDesc = opts.Theme.HelpDesc
	h.Styles.FullSeparator = opts.Theme.HelpSeparator

	game := t2048.New()
	game.Reset(cfg)

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		queue:     core.NewInputQueue(opts.QueueSize),
		keys:      DefaultKeyMap(),
		help:      h,
		theme:     opts.Theme,
		logger:    opts.Logger.With("session", session),
		session:   session,
		menu:      newMainMenu(game.Title()),
		settings:  newSettingsMenu(),
		lastState: core.StatePlaying,
	}
	m.layout()
	return m
}

// Session returns the session identifier attached to every log line.
func (m Model) Session() string {
	return m.session
}

// Game returns the running game.
func (m Model) Game() *t2048.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"tick_rate", m.config.TickRate,
		"target", m.config.Target,
		"anim", m.config.AnimDuration,
		"policy", m.config.InputPolicy,
		"theme", m.theme.Name,
	)
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

// handleKey queues game actions. Quit bypasses the queue and works on every
// screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case m.mode != modeGame:
		return m.handleMenuKey(msg)
	case key.Matches(msg, m.keys.Menu):
		m.setMode(modeMenu)
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		return m.quit()
	}

	m.queue.Push(action)
	return m, nil
}

// handleResize resizes the screen buffer. The game keeps its state; it only
// pauses while the terminal is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	wasPaused := m.game.State().Paused
	m.layout()
	if paused := m.game.State().Paused; paused != wasPaused {
		m.logger.Debug("resize", "width", msg.Width, "height", msg.Height, "paused", paused)
	}

	return m, nil
}

// layout splits the terminal between the screen buffer and the help bar,
// which is measured because the expanded help is taller.
func (m *Model) layout() {
	m.help.Width = m.config.ScreenW
	h := max(m.config.ScreenH-lipgloss.Height(m.helpView()), 0)

	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// helpView renders the key help for the current screen.
func (m Model) helpView() string {
	if m.mode == modeGame {
		return m.help.View(m.keys)
	}
	return m.help.View(menuKeyMap{m.keys})
}

// handleTick pops at most one queued action and steps the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.mode != modeGame {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.queue.Pop())
	m.logTransition(result.State)

	if result.State.State == core.StateQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// quit ends the session immediately.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.game.Quit()
	m.logTransition(m.game.State())
	m.queue.Reset()
	m.quitting = true
	return m, tea.Quit
}

// logTransition records lifecycle changes.
func (m *Model) logTransition(st core.GameState) {
	if st.State == m.lastState {
		return
	}
	snap := m.game.Snapshot()

	switch {
	case st.State == core.StatePlaying && m.lastState.Terminal():
		m.logger.Info("restart", "after", m.lastState)
	case st.State == core.StateQuit:
		m.logger.Info("quit", "score", st.Score, "moves", snap.Moves, "max_tile", snap.MaxTile)
	default:
		m.logger.Info("state changed",
			"from", m.lastState,
			"to", st.State,
			"score", st.Score,
			"moves", snap.Moves,
			"max_tile", snap.MaxTile,
		)
	}
	m.lastState = st.State
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == modeGame {
		m.game.Render(m.screen)
	} else {
		m.renderMenu(m.screen)
	}

	if m.screen.Height() == 0 {
		return m.helpView()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen, m.theme.Palette),
		m.helpView(),
	)
}

// Run starts the Bubble Tea program and blocks until the player quits.
// Bubble Tea restores the terminal on every exit path, including panics.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		model.logger.Error("program exited", "err", err)
		return err
	}

	if fm, ok := final.(Model); ok {
		snap := fm.game.Snapshot()
		model.logger.Info("session ended", "score", snap.Score, "moves", snap.Moves, "ticks", snap.Tick)
	}
	return nil
}
