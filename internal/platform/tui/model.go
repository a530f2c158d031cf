package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/registry"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

// helpHeight is the number of rows reserved below the scene for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving one scene.
type Model struct {
	scene      registry.Scene
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       SceneKeyMap
	help       help.Model
	inputFrame core.InputFrame
	state      core.SceneState

	runID     string
	started   time.Time
	lastErr   error
	runSaved  bool
	quitting  bool
	back      bool
	exitOnEsc bool // Standalone play has no menu to return to
}

// NewModel creates a model for the given scene. A nil store disables run
// history, a nil logger discards log output.
func NewModel(scene registry.Scene, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		scene:      scene,
		screen:     core.NewScreen(cfg.ScreenW, sceneHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger.With("scene", scene.ID()),
		config:     cfg,
		keys:       DefaultSceneKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		runID:      uuid.NewString(),
	}
}

func sceneHeight(h int) int {
	return max(h-helpHeight, 0)
}

func (m Model) sceneConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = sceneHeight(cfg.ScreenH)
	return cfg
}

// Init starts the scene and the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.scene.Reset(m.sceneConfig()); err != nil {
		m.logger.Error("scene reset failed", "error", err)
	}
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.finish()
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		m.finish()
		if m.exitOnEsc {
			return m, tea.Quit
		}
		return m, nil
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize rebuilds the scene for the new size, keeping its counters.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH && m.lastErr == nil {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, sceneHeight(msg.Height))
	m.help.Width = msg.Width

	if err := m.scene.Resize(m.sceneConfig()); err != nil {
		m.logger.Error("scene resize failed", "width", msg.Width, "height", msg.Height, "error", err)
		m.lastErr = err
		return m, nil
	}
	m.logger.Debug("scene resized", "width", msg.Width, "height", msg.Height)
	m.lastErr = nil
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}
	if m.started.IsZero() {
		m.started = time.Now()
	}

	result := m.scene.Step(m.inputFrame)
	m.state = result.State
	if result.Err != nil && m.lastErr == nil {
		m.logger.Warn("scene step failed", "error", result.Err)
	}
	m.lastErr = result.Err

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finish saves the run once and releases the scene's tiles.
func (m *Model) finish() {
	if m.runSaved {
		return
	}
	m.runSaved = true
	m.state = m.scene.State()
	m.scene.Close()

	if m.store == nil || m.state.Distance <= 0 {
		return
	}
	run := storage.Run{
		RunID:     m.runID,
		SceneID:   m.scene.ID(),
		Direction: m.state.Direction,
		Distance:  m.state.Distance,
		Recycles:  m.state.Recycles,
		Duration:  time.Since(m.started),
	}
	if m.started.IsZero() {
		run.Duration = 0
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "run", m.runID, "error", err)
		return
	}
	m.logger.Info("run saved", "run", m.runID, "distance", m.state.Distance, "recycles", m.state.Recycles)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || (m.back && m.exitOnEsc) {
		return ""
	}

	m.scene.Render(m.screen)
	if m.lastErr != nil {
		m.screen.DrawText(1, m.screen.Height()-1, m.lastErr.Error())
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the scene state as of the last tick.
func (m Model) State() core.SceneState {
	return m.state
}

// RunID returns the identifier the run is saved under.
func (m Model) RunID() string {
	return m.runID
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for a single scene.
func Run(scene registry.Scene, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(scene, store, logger, cfg)
	model.exitOnEsc = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
