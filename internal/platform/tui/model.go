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

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/game"
	"github.com/vovakirdan/wordfall/internal/storage"
)

// Model is the Bubble Tea model driving one wordfall session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	flash    int
	status   string
	quitting bool
	runSaved bool // Whether the finished run has been written to the store
}

// NewModel creates a model for session. store may be nil, in which case
// finished runs are not recorded.
func NewModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:   store,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey routes control actions to the session and typing to the matcher.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.Decode(msg)

	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionStart:
		m.session.Start()
		m.status = ""
	case core.ActionPause:
		m.session.TogglePause()
	case core.ActionReset:
		m.session.Reset()
		m.runSaved = false
		m.flash = 0
	case core.ActionEasy, core.ActionMedium, core.ActionHard:
		m.setLevel(in.Action)
	case core.ActionNone:
		for _, k := range in.Strokes {
			m.session.HandleInput(k)
		}
		m.drainEvents()
	}

	return m, nil
}

func (m *Model) setLevel(a core.Action) {
	lvl := config.LevelEasy
	switch a {
	case core.ActionMedium:
		lvl = config.LevelMedium
	case core.ActionHard:
		lvl = config.LevelHard
	}
	if err := m.session.SetLevel(lvl); err != nil {
		m.logger.Warn("cannot change difficulty", "difficulty", lvl, "error", err)
	}
}

// handleResize processes window resize events. The field is drawn in
// logical units, so the round keeps going at any size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.session.Update(now)
	m.drainEvents()
	if m.flash > 0 {
		m.flash--
	}
	return m, tickCmd(m.config.TickRate)
}

// drainEvents reacts to what the session reported since the last frame.
func (m *Model) drainEvents() {
	for _, ev := range m.session.TakeEvents() {
		switch ev.Kind {
		case game.EventWordCompleted:
			m.flash = flashFrames
			m.logger.Debug("word completed", "word", ev.Word)
		case game.EventGameOver:
			m.saveRun(ev.Result)
		}
	}
}

// saveRun records the finished round once.
func (m *Model) saveRun(res *game.Result) {
	if m.runSaved || res == nil {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Level:      res.Level,
		WPM:        res.WPM,
		WordsTyped: res.WordsTyped,
		Elapsed:    res.Elapsed,
		NewRecord:  res.NewRecord,
	})
	if err != nil {
		m.logger.Warn("run not recorded", "error", err)
	}
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	drawSession(m.screen, m.session, frame{})

	dir := config.ScreenshotDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("wordfall_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.status = "saved " + filepath.Base(path)
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawSession(m.screen, m.session, frame{flash: m.flash, status: m.status})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for session.
func Run(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
