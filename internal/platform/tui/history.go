package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-scroller/internal/registry"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

const maxRuns = 50

// HistoryKeyMap defines key bindings for the run history screen.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScene, k.PrevScene, k.Back}
}

// FullHelp returns keybindings for the expanded help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextScene, k.PrevScene},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns the default history key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scene"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists the longest runs per scene.
type HistoryModel struct {
	scenes    []registry.SceneInfo
	cursor    int
	store     *storage.Store
	runs      []storage.Run
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	now       func() time.Time
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		scenes: registry.List(),
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
		now:    time.Now,
	}
	m.table = m.createTable()
	if len(m.scenes) > 0 {
		m.loadRuns(m.scenes[0].ID)
	}
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Distance", Width: 10},
		{Title: "Recycled", Width: 9},
		{Title: "Dir", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "When", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *HistoryModel) loadRuns(sceneID string) {
	m.runs, m.loadErr = nil, nil
	if m.store != nil {
		m.runs, m.loadErr = m.store.TopRuns(sceneID, maxRuns)
	}
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		when := "-"
		if !r.CreatedAt.IsZero() {
			when = humanize.RelTime(r.CreatedAt, m.now(), "ago", "from now")
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			humanize.Comma(int64(r.Distance)),
			humanize.Comma(int64(r.Recycles)),
			r.Direction,
			r.Duration.Round(time.Second).String(),
			when,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextScene):
			if len(m.scenes) > 0 {
				m.cursor = (m.cursor + 1) % len(m.scenes)
				m.loadRuns(m.scenes[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevScene):
			if len(m.scenes) > 0 {
				m.cursor = (m.cursor - 1 + len(m.scenes)) % len(m.scenes)
				m.loadRuns(m.scenes[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "LONGEST RUNS"
	if len(m.scenes) > 0 {
		title = fmt.Sprintf("LONGEST RUNS - %s", m.scenes[m.cursor].Title)
	}
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))
	b.WriteString("\n")
	b.WriteString(menuSubtleStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) tableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.store == nil:
		return empty.Render("Run history is disabled.")
	case m.loadErr != nil:
		return empty.Render("Could not load runs: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return empty.Render("No runs recorded yet.\nPick a scene and let it scroll!")
	}
	return m.table.View()
}

// Runs returns the runs shown for the selected scene.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if the user wants to go back to the menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
