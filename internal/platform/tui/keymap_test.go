package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSceneKeyMapAction(t *testing.T) {
	km := DefaultSceneKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"p pauses", runeKey('p'), core.ActionPause},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause},
		{"plus", runeKey('+'), core.ActionFaster},
		{"minus", runeKey('-'), core.ActionSlower},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionScrollUp},
		{"j", runeKey('j'), core.ActionScrollDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionScrollLeft},
		{"l", runeKey('l'), core.ActionScrollRight},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	if len(DefaultSceneKeyMap().ShortHelp()) == 0 {
		t.Error("scene key map has no short help")
	}
	if len(DefaultMenuKeyMap().FullHelp()[0]) != 5 {
		t.Error("menu full help should list every binding")
	}
}
