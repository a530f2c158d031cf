package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetColor(0, 0, '#', core.ColorRed)
	s.SetColor(1, 0, '#', core.ColorRed)
	s.DrawText(2, 0, "ab")
	s.SetColor(0, 1, '~', core.Color(99))

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "##ab  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "~     " {
		t.Errorf("line 1 = %q", lines[1])
	}
}
