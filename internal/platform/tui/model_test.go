package tui

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/registry"
	"github.com/vovakirdan/tui-scroller/internal/scene"
	"github.com/vovakirdan/tui-scroller/internal/scroll"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

func stripConfig() config.SceneConfig {
	return config.SceneConfig{
		Title:  "Strip",
		Scroll: config.ScrollSettings{Direction: "left", Speed: 10, Reskin: true},
		Variants: []config.VariantConfig{
			{Name: "hash", Art: []string{"#"}},
			{Name: "dot", Art: []string{"."}},
		},
	}
}

func newStripScene(t *testing.T, id string) *scene.Scene {
	t.Helper()
	sc, err := scene.New(id, stripConfig(), scene.WithClock(scroll.FixedClock{Interval: 100 * time.Millisecond}))
	if err != nil {
		t.Fatalf("scene.New() failed: %v", err)
	}
	return sc
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 20, ScreenH: 11, TickRate: 10, Seed: 1}
}

func tick(t *testing.T, m tea.Model, n int) tea.Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = m.Update(TickMsg(time.Now()))
	}
	return m
}

func TestModelScrollsAndSavesRunOnQuit(t *testing.T) {
	store := openStore(t)
	m := NewModel(newStripScene(t, "strip"), store, nil, testRuntime())
	m.Init()

	tm := tick(t, m, 5)
	if d := tm.(Model).State().Distance; math.Abs(d-5) > 1e-9 {
		t.Fatalf("Distance = %f after 5 ticks, expected 5", d)
	}

	tm, cmd := tm.Update(runeKey('q'))
	model := tm.(Model)
	if !model.IsQuitting() || cmd == nil {
		t.Fatal("q should quit the program")
	}

	runs, err := store.TopRuns("strip", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].RunID != model.RunID() || runs[0].Direction != "left" {
		t.Errorf("saved run = %+v", runs[0])
	}
	if math.Abs(runs[0].Distance-5) > 1e-9 {
		t.Errorf("saved distance = %f, expected 5", runs[0].Distance)
	}

	// A second quit must not save again.
	model.Update(runeKey('q'))
	if n, _ := store.RunCount("strip"); n != 1 {
		t.Errorf("RunCount() = %d, expected 1", n)
	}
}

func TestModelForwardsSceneKeys(t *testing.T) {
	m := NewModel(newStripScene(t, "strip"), nil, nil, testRuntime())
	m.Init()

	var tm tea.Model = m
	tm, _ = tm.Update(runeKey('+'))
	tm = tick(t, tm, 1)
	if got := tm.(Model).State().Speed; got != 12.5 {
		t.Errorf("Speed = %f after +, expected 12.5", got)
	}

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyUp})
	tm = tick(t, tm, 1)
	if got := tm.(Model).State().Direction; got != "up" {
		t.Errorf("Direction = %q after up arrow, expected up", got)
	}

	tm, _ = tm.Update(runeKey('p'))
	tm = tick(t, tm, 1)
	if !tm.(Model).State().Paused {
		t.Error("p should pause the scene")
	}
}

func TestModelViewAndResize(t *testing.T) {
	m := NewModel(newStripScene(t, "strip"), nil, nil, testRuntime())
	m.Init()
	tm := tick(t, m, 1)

	lines := strings.Split(ansi.Strip(tm.View()), "\n")
	if len(lines) != 11 {
		t.Fatalf("View() has %d lines, expected 10 scene rows and help", len(lines))
	}
	if !strings.Contains(lines[10], "pause") {
		t.Errorf("help line = %q", lines[10])
	}

	tm, _ = tm.Update(tea.WindowSizeMsg{Width: 30, Height: 8})
	tm = tick(t, tm, 1)
	lines = strings.Split(ansi.Strip(tm.View()), "\n")
	if len(lines) != 8 {
		t.Errorf("View() has %d lines after resize, expected 8", len(lines))
	}
	if w := len([]rune(lines[3])); w != 30 {
		t.Errorf("scene row width = %d after resize, expected 30", w)
	}
	if tm.(Model).State().Failed {
		t.Error("resize should not leave the scene failed")
	}
}

func TestModelBackWithoutMenuQuits(t *testing.T) {
	m := NewModel(newStripScene(t, "strip"), nil, nil, testRuntime())
	m.exitOnEsc = true
	m.Init()

	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !tm.(Model).BackToMenu() || cmd == nil {
		t.Error("esc in standalone play should quit")
	}
	if tm.View() != "" {
		t.Error("View() should be empty after leaving")
	}
}

func TestSessionFlow(t *testing.T) {
	const id = "strip_session"
	registry.Register(id, func() registry.Scene { return newStripScene(t, id) })
	t.Cleanup(func() { registry.Unregister(id) })

	store := openStore(t)
	var tm tea.Model = NewSessionModel(store, nil, testRuntime())

	if !strings.Contains(ansi.Strip(tm.View()), "Strip") {
		t.Fatal("menu should list the registered scene")
	}

	tm, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if tm.(SessionModel).view != viewScene || cmd == nil {
		t.Fatal("enter should start the selected scene")
	}

	tm = tick(t, tm, 3)
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if tm.(SessionModel).view != viewMenu {
		t.Fatal("esc should return to the menu")
	}
	if n, _ := store.RunCount(id); n != 1 {
		t.Errorf("RunCount() = %d after leaving the scene, expected 1", n)
	}
	if !strings.Contains(ansi.Strip(tm.View()), "best 3") {
		t.Errorf("menu should show the best distance:\n%s", ansi.Strip(tm.View()))
	}

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyTab})
	if tm.(SessionModel).view != viewHistory {
		t.Fatal("tab should open the run history")
	}
	if runs := tm.(SessionModel).history.Runs(); len(runs) != 1 {
		t.Errorf("history shows %d runs, expected 1", len(runs))
	}

	tm, _ = tm.Update(runeKey('b'))
	if tm.(SessionModel).view != viewMenu {
		t.Fatal("b should leave the history")
	}

	tm, cmd = tm.Update(runeKey('q'))
	if tm.View() != "" || cmd == nil {
		t.Error("q in the menu should quit the session")
	}
}
